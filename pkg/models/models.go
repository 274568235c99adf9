package models

import (
	"time"
)

// TransactionType defines how a product can be transacted.
type TransactionType string

const (
	CASH TransactionType = "cash"
	SWAP TransactionType = "swap"
	BOTH TransactionType = "both"
)

// ProductStatus defines the possible states of a product listing.
type ProductStatus string

const (
	ACTIVE  ProductStatus = "active"
	PENDING ProductStatus = "pending"
	SOLD    ProductStatus = "sold"
)

// OfferStatus defines the possible states of a cash offer.
type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
)

// SwapStatus defines the possible states of a swap proposal.
type SwapStatus string

const (
	SwapPending   SwapStatus = "pending"
	SwapAccepted  SwapStatus = "accepted"
	SwapRejected  SwapStatus = "rejected"
	SwapCompleted SwapStatus = "completed"
)

// EscrowStatus defines the possible states of an escrow transaction.
type EscrowStatus string

const (
	EscrowHeld          EscrowStatus = "held"
	EscrowAdminApproved EscrowStatus = "admin_approved"
	EscrowCompleted     EscrowStatus = "completed"
	EscrowRejected      EscrowStatus = "rejected"
)

// Product represents a marketplace listing. This core only reads
// products, except for the sold transition applied on escrow completion.
type Product struct {
	Id              string          `dynamodbav:"id"`
	SellerId        string          `dynamodbav:"seller_id"`
	Title           string          `dynamodbav:"title"`
	Price           int64           `dynamodbav:"price"`
	TransactionType TransactionType `dynamodbav:"transaction_type"`
	Status          ProductStatus   `dynamodbav:"status"`
	CreatedAt       time.Time       `dynamodbav:"created_at"`
}

// Offer represents a buyer's proposed cash price for a listing.
type Offer struct {
	Id          string      `dynamodbav:"id"`
	ProductId   string      `dynamodbav:"product_id"`
	BuyerId     string      `dynamodbav:"buyer_id"`
	OfferAmount int64       `dynamodbav:"offer_amount"`
	Status      OfferStatus `dynamodbav:"status"`
	CreatedAt   time.Time   `dynamodbav:"created_at"`
	UpdatedAt   time.Time   `dynamodbav:"updated_at"`
}

// Swap represents a buyer's proposed item-for-item trade.
// ProposedProductId is empty when no specific item is offered.
type Swap struct {
	Id                string     `dynamodbav:"id"`
	ProductId         string     `dynamodbav:"product_id"`
	ProposerId        string     `dynamodbav:"proposer_id"`
	ProposedProductId string     `dynamodbav:"proposed_product_id,omitempty"`
	Message           string     `dynamodbav:"message"`
	Status            SwapStatus `dynamodbav:"status"`
	CreatedAt         time.Time  `dynamodbav:"created_at"`
	UpdatedAt         time.Time  `dynamodbav:"updated_at"`
}

// EscrowTransaction represents an admin-mediated hold-and-release record
// for an accepted offer. Buyer, seller and amount are snapshots taken at
// creation time, not live references.
type EscrowTransaction struct {
	Id              string          `dynamodbav:"id"`
	OfferId         string          `dynamodbav:"offer_id"`
	ProductId       string          `dynamodbav:"product_id"`
	BuyerId         string          `dynamodbav:"buyer_id"`
	SellerId        string          `dynamodbav:"seller_id"`
	Amount          int64           `dynamodbav:"amount"`
	TransactionType TransactionType `dynamodbav:"transaction_type"`
	Status          EscrowStatus    `dynamodbav:"status"`
	CreatedAt       time.Time       `dynamodbav:"created_at"`
	UpdatedAt       time.Time       `dynamodbav:"updated_at"`
}

// Chat represents a conversation thread. ProductId is empty for direct
// message threads between two users.
type Chat struct {
	Id        string    `dynamodbav:"id"`
	ChatKey   string    `dynamodbav:"chat_key"`
	ProductId string    `dynamodbav:"product_id,omitempty"`
	BuyerId   string    `dynamodbav:"buyer_id"`
	SellerId  string    `dynamodbav:"seller_id"`
	CreatedAt time.Time `dynamodbav:"created_at"`
}

// Message represents a single, append-only chat message. System messages
// narrating state transitions use the acting user's id as sender.
type Message struct {
	Id        string    `dynamodbav:"id"`
	ChatId    string    `dynamodbav:"chat_id"`
	SenderId  string    `dynamodbav:"sender_id"`
	Message   string    `dynamodbav:"message"`
	CreatedAt time.Time `dynamodbav:"created_at"`
}
