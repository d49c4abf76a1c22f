package history

import "context"

// Repository is the durable per-user append log. Append must be atomic
// with respect to id assignment; ListByUser returns most-recent-first.
type Repository interface {
	Append(ctx context.Context, abhaID string, e Entry) (*Record, error)
	ListByUser(ctx context.Context, abhaID string) ([]*Record, error)
}
