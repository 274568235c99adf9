package storage

import (
	"context"
	"time"

	"github.com/chris/campus-market/pkg/models"
)

// EscrowStore defines the interface for creating and deciding escrow
// transactions prior to settlement.
type EscrowStore interface {
	// CreateEscrow persists a new held escrow transaction. At most one
	// escrow may exist per offer; a duplicate returns ErrConflict.
	CreateEscrow(ctx context.Context, escrow *models.EscrowTransaction) (*models.EscrowTransaction, error)

	// GetEscrow retrieves an escrow transaction by its ID.
	GetEscrow(ctx context.Context, escrowID string) (*models.EscrowTransaction, error)

	// GetEscrowByOffer retrieves the escrow transaction for an offer,
	// used to surface the existing hold on a repeated initiation.
	GetEscrowByOffer(ctx context.Context, offerID string) (*models.EscrowTransaction, error)

	// DecideEscrow transitions a held escrow to admin_approved or
	// rejected, conditional on the current status being held.
	DecideEscrow(ctx context.Context, escrowID string, decision models.EscrowStatus) (*models.EscrowTransaction, error)

	// ListEscrowsByStatus retrieves escrow transactions newest first.
	// An empty status returns all of them.
	ListEscrowsByStatus(ctx context.Context, status models.EscrowStatus) ([]models.EscrowTransaction, error)

	// GetStuckEscrows retrieves escrows held for longer than maxAge,
	// awaiting an admin decision.
	GetStuckEscrows(ctx context.Context, maxAge time.Duration) ([]models.EscrowTransaction, error)
}

// SettlementStore defines the privileged interface for completing an
// escrow. The completion is an atomic unit that also transitions the
// owning product to sold, so it is kept apart from EscrowStore and only
// handed to the component that confirms completion.
type SettlementStore interface {
	// CompleteEscrow transitions an admin_approved escrow to completed
	// and marks the product sold in the same write. A regressed or
	// already-completed escrow returns ErrConflict.
	CompleteEscrow(ctx context.Context, escrow *models.EscrowTransaction) (*models.EscrowTransaction, error)
}
