package terminology

// Service exposes ranked vocabulary search over the immutable store.
type Service struct {
	store *Store
	limit int
}

// NewService creates a terminology service. limit caps the result set of
// every search; callers needing more must narrow the query.
func NewService(store *Store, limit int) *Service {
	if limit <= 0 {
		limit = 50
	}
	return &Service{store: store, limit: limit}
}

// Search answers a ranked free-text or code query against one vocabulary.
// No-match and empty-query both yield an empty slice; absence is data
// here, never an error.
func (s *Service) Search(system System, query string) []Concept {
	return s.store.Search(system, query, s.limit)
}

// Get looks up a single concept by its unique (system, code) key.
func (s *Service) Get(system System, code string) (*Concept, bool) {
	return s.store.Get(system, code)
}

// Count reports the loaded catalog size for one system.
func (s *Service) Count(system System) int {
	return s.store.Count(system)
}
