// Package api holds the transport-facing request and response types for
// the marketplace negotiation API.
package api

import "time"

// TransactionType defines how a product can be transacted.
type TransactionType string

// ProductStatus defines the state of a product listing.
type ProductStatus string

// OfferStatus defines the state of an offer.
type OfferStatus string

// SwapStatus defines the state of a swap proposal.
type SwapStatus string

// EscrowStatus defines the state of an escrow transaction.
type EscrowStatus string

// Product is the read-only listing view exposed by the API.
type Product struct {
	Id              string          `json:"id"`
	SellerId        string          `json:"seller_id"`
	Title           string          `json:"title"`
	Price           int64           `json:"price"`
	TransactionType TransactionType `json:"transaction_type"`
	Status          ProductStatus   `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewOffer is the request body for submitting an offer on a product.
type NewOffer struct {
	Amount int64 `json:"amount"`
}

// Offer is the API representation of a cash offer.
type Offer struct {
	Id          string      `json:"id"`
	ProductId   string      `json:"product_id"`
	BuyerId     string      `json:"buyer_id"`
	OfferAmount int64       `json:"offer_amount"`
	Status      OfferStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Resolution is the request body for resolving an offer or swap.
type Resolution struct {
	Decision string `json:"decision"`
}

// NewSwap is the request body for proposing a swap on a product.
type NewSwap struct {
	ProposedProductId *string `json:"proposed_product_id,omitempty"`
	Message           string  `json:"message"`
}

// Swap is the API representation of a swap proposal.
type Swap struct {
	Id                string     `json:"id"`
	ProductId         string     `json:"product_id"`
	ProposerId        string     `json:"proposer_id"`
	ProposedProductId *string    `json:"proposed_product_id,omitempty"`
	Message           string     `json:"message"`
	Status            SwapStatus `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Escrow is the API representation of an escrow transaction.
type Escrow struct {
	Id              string          `json:"id"`
	OfferId         string          `json:"offer_id"`
	ProductId       string          `json:"product_id"`
	BuyerId         string          `json:"buyer_id"`
	SellerId        string          `json:"seller_id"`
	Amount          int64           `json:"amount"`
	TransactionType TransactionType `json:"transaction_type"`
	Status          EscrowStatus    `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// EscrowDecision is the request body for an admin's escrow decision.
type EscrowDecision struct {
	Decision string `json:"decision"`
}

// NewChat is the request body for resolving a conversation thread. A nil
// ProductId resolves a direct message thread with PeerId.
type NewChat struct {
	ProductId *string `json:"product_id,omitempty"`
	PeerId    string  `json:"peer_id"`
}

// Chat is the API representation of a conversation thread.
type Chat struct {
	Id        string    `json:"id"`
	ProductId *string   `json:"product_id,omitempty"`
	BuyerId   string    `json:"buyer_id"`
	SellerId  string    `json:"seller_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMessage is the request body for posting a chat message.
type NewMessage struct {
	Message string `json:"message"`
}

// Message is the API representation of a chat message.
type Message struct {
	Id        string    `json:"id"`
	ChatId    string    `json:"chat_id"`
	SenderId  string    `json:"sender_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
