package history

import (
	"context"
	"fmt"
)

// Service wraps the repository with input validation.
type Service struct {
	repo Repository
}

// NewService creates a new history service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Append stores one translation event for a user. Repeated identical
// lookups each produce a new record; there is no dedup by design.
func (s *Service) Append(ctx context.Context, abhaID string, e Entry) (*Record, error) {
	if abhaID == "" {
		return nil, fmt.Errorf("abha_id is required")
	}
	if e.SourceCode == "" || e.TargetCode == "" {
		return nil, fmt.Errorf("source and target codes are required")
	}
	return s.repo.Append(ctx, abhaID, e)
}

// ListByUser returns the user's records, most recent first. A user with
// no history gets an empty list, not an error.
func (s *Service) ListByUser(ctx context.Context, abhaID string) ([]*Record, error) {
	if abhaID == "" {
		return nil, fmt.Errorf("abha_id is required")
	}
	return s.repo.ListByUser(ctx, abhaID)
}
