package storage

import (
	"context"

	"github.com/chris/campus-market/pkg/models"
)

// SwapStore defines the interface for managing swap proposals.
type SwapStore interface {
	// GetSwap retrieves a swap proposal by its ID.
	GetSwap(ctx context.Context, swapID string) (*models.Swap, error)

	// ListSwapsByProduct retrieves swap proposals for a product, newest
	// first. A non-empty proposerID narrows the result to that proposer.
	ListSwapsByProduct(ctx context.Context, productID, proposerID string) ([]models.Swap, error)

	// CreateSwap persists a new pending swap proposal.
	CreateSwap(ctx context.Context, swap *models.Swap) (*models.Swap, error)

	// ResolveSwap applies a status transition conditional on the swap
	// currently being in expected. A lost race returns ErrConflict.
	ResolveSwap(ctx context.Context, swapID string, expected, decision models.SwapStatus) (*models.Swap, error)
}
