package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a concurrent or duplicate state transition
// loses a conditional write, e.g. resolving an already-resolved offer.
var ErrConflict = errors.New("conflicting state transition")

// ErrPermissionDenied is returned when the acting user lacks the required
// role or ownership for an operation.
var ErrPermissionDenied = errors.New("permission denied")

// ErrValidation is the base error for malformed or incompatible input.
var ErrValidation = errors.New("validation failed")

// Specific validation failures, all matching errors.Is(err, ErrValidation).
var (
	ErrIncompatibleListing = fmt.Errorf("%w: listing does not support this transaction type", ErrValidation)
	ErrListingNotActive    = fmt.Errorf("%w: listing is not active", ErrValidation)
	ErrOwnListing          = fmt.Errorf("%w: cannot negotiate on your own listing", ErrValidation)
	ErrNonPositiveAmount   = fmt.Errorf("%w: offer amount must be positive", ErrValidation)
	ErrForeignProposedItem = fmt.Errorf("%w: proposed item does not belong to the proposer", ErrValidation)
)
