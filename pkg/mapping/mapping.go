package mapping

import (
	"github.com/chris/campus-market/pkg/api"
	"github.com/chris/campus-market/pkg/models"
)

// ToApiProduct converts a domain Product model to an API Product model.
func ToApiProduct(p *models.Product) *api.Product {
	return &api.Product{
		Id:              p.Id,
		SellerId:        p.SellerId,
		Title:           p.Title,
		Price:           p.Price,
		TransactionType: api.TransactionType(p.TransactionType),
		Status:          api.ProductStatus(p.Status),
		CreatedAt:       p.CreatedAt,
	}
}

// ToApiOffer converts a domain Offer model to an API Offer model.
func ToApiOffer(o *models.Offer) *api.Offer {
	return &api.Offer{
		Id:          o.Id,
		ProductId:   o.ProductId,
		BuyerId:     o.BuyerId,
		OfferAmount: o.OfferAmount,
		Status:      api.OfferStatus(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ToDomainNewOffer builds a domain Offer from a submit request.
// Note: This is a simplified mapping; server-side fields are completed by
// the storage layer.
func ToDomainNewOffer(productID, buyerID string, newOffer *api.NewOffer) *models.Offer {
	return &models.Offer{
		ProductId:   productID,
		BuyerId:     buyerID,
		OfferAmount: newOffer.Amount,
	}
}

// ToApiSwap converts a domain Swap model to an API Swap model.
func ToApiSwap(s *models.Swap) *api.Swap {
	var proposed *string
	if s.ProposedProductId != "" {
		p := s.ProposedProductId
		proposed = &p
	}
	return &api.Swap{
		Id:                s.Id,
		ProductId:         s.ProductId,
		ProposerId:        s.ProposerId,
		ProposedProductId: proposed,
		Message:           s.Message,
		Status:            api.SwapStatus(s.Status),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// ToDomainNewSwap builds a domain Swap from a proposal request.
func ToDomainNewSwap(productID, proposerID string, newSwap *api.NewSwap) *models.Swap {
	swap := &models.Swap{
		ProductId:  productID,
		ProposerId: proposerID,
		Message:    newSwap.Message,
	}
	if newSwap.ProposedProductId != nil {
		swap.ProposedProductId = *newSwap.ProposedProductId
	}
	return swap
}

// ToApiEscrow converts a domain EscrowTransaction to an API Escrow model.
func ToApiEscrow(e *models.EscrowTransaction) *api.Escrow {
	return &api.Escrow{
		Id:              e.Id,
		OfferId:         e.OfferId,
		ProductId:       e.ProductId,
		BuyerId:         e.BuyerId,
		SellerId:        e.SellerId,
		Amount:          e.Amount,
		TransactionType: api.TransactionType(e.TransactionType),
		Status:          api.EscrowStatus(e.Status),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// ToApiChat converts a domain Chat model to an API Chat model.
func ToApiChat(c *models.Chat) *api.Chat {
	var productID *string
	if c.ProductId != "" {
		p := c.ProductId
		productID = &p
	}
	return &api.Chat{
		Id:        c.Id,
		ProductId: productID,
		BuyerId:   c.BuyerId,
		SellerId:  c.SellerId,
		CreatedAt: c.CreatedAt,
	}
}

// ToApiMessage converts a domain Message model to an API Message model.
func ToApiMessage(m *models.Message) *api.Message {
	return &api.Message{
		Id:        m.Id,
		ChatId:    m.ChatId,
		SenderId:  m.SenderId,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
