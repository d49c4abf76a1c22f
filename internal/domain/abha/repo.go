package abha

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no identity exists for an ABHA id.
var ErrNotFound = errors.New("identity not found")

// Repository provides read-only access to registered identities.
type Repository interface {
	GetByABHAID(ctx context.Context, abhaID string) (*Identity, error)
}
