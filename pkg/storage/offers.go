package storage

import (
	"context"

	"github.com/chris/campus-market/pkg/models"
)

// OfferReader defines the interface for reading offer data.
type OfferReader interface {
	// GetOffer retrieves an offer by its ID.
	GetOffer(ctx context.Context, offerID string) (*models.Offer, error)

	// ListOffersByProduct retrieves offers for a product, newest first.
	// A non-empty buyerID narrows the result to that buyer's offers.
	ListOffersByProduct(ctx context.Context, productID, buyerID string) ([]models.Offer, error)
}

// OfferManager defines the interface for creating and resolving offers.
type OfferManager interface {
	// CreateOffer persists a new pending offer. Duplicate offers per
	// (product, buyer) are allowed; each call creates a new row.
	CreateOffer(ctx context.Context, offer *models.Offer) (*models.Offer, error)

	// ResolveOffer transitions a pending offer to accepted or rejected.
	// The update is conditional on the current status being pending; a
	// lost race returns ErrConflict.
	ResolveOffer(ctx context.Context, offerID string, decision models.OfferStatus) (*models.Offer, error)
}

// OfferStore combines the reader and manager interfaces.
type OfferStore interface {
	OfferReader
	OfferManager
}
