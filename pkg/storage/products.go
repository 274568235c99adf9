package storage

import (
	"context"

	"github.com/chris/campus-market/pkg/models"
)

// ListingReader defines the read-only gateway to product listings used to
// validate transaction-type compatibility and ownership. Listing CRUD
// lives outside this core; the only write this engine ever applies to a
// product is the sold transition inside CompleteEscrow.
type ListingReader interface {
	// GetProduct retrieves a product listing by its ID.
	GetProduct(ctx context.Context, productID string) (*models.Product, error)

	// ListActiveProductsBySeller retrieves a seller's active listings,
	// from which a proposer picks their item for a swap.
	ListActiveProductsBySeller(ctx context.Context, sellerID string) ([]models.Product, error)
}
