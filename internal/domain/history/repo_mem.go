package history

import (
	"context"
	"sync"
	"time"
)

// repoMem keeps the append log in process memory. It backs deployments
// without a DATABASE_URL and the test suite. A single lock covers id
// assignment and the append itself, so a concurrent ListByUser never
// observes a half-written record.
type repoMem struct {
	mu     sync.Mutex
	nextID int64
	byUser map[string][]*Record
}

// NewRepoMem creates an empty in-memory history repository.
func NewRepoMem() Repository {
	return &repoMem{byUser: make(map[string][]*Record)}
}

func (r *repoMem) Append(_ context.Context, abhaID string, e Entry) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	rec := &Record{
		ID:           r.nextID,
		ABHAID:       abhaID,
		SourceSystem: e.SourceSystem,
		SourceCode:   e.SourceCode,
		TargetSystem: e.TargetSystem,
		TargetCode:   e.TargetCode,
		SnomedCTCode: e.SnomedCTCode,
		LoincCode:    e.LoincCode,
		Timestamp:    time.Now().UTC(),
	}
	r.byUser[abhaID] = append(r.byUser[abhaID], rec)
	return rec, nil
}

func (r *repoMem) ListByUser(_ context.Context, abhaID string) ([]*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.byUser[abhaID]
	out := make([]*Record, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		copied := *stored[i]
		out = append(out, &copied)
	}
	return out, nil
}
