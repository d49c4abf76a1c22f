package abha

import "context"

type repoMem struct {
	byID map[string]Identity
}

// NewRepoMem creates an identity repository over seeded identities. The
// catalog is read-only after construction, so lookups need no locking.
func NewRepoMem(identities []Identity) Repository {
	byID := make(map[string]Identity, len(identities))
	for _, id := range identities {
		byID[id.ABHAID] = id
	}
	return &repoMem{byID: byID}
}

func (r *repoMem) GetByABHAID(_ context.Context, abhaID string) (*Identity, error) {
	id, ok := r.byID[abhaID]
	if !ok {
		return nil, ErrNotFound
	}
	return &id, nil
}
