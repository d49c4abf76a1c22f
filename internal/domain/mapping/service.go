package mapping

import (
	"github.com/ayushbridge/terminology-server/internal/domain/terminology"
)

// Resolver answers translation lookups from the precomputed table. It is
// a pure function of the table and its inputs: it never writes history,
// so callers can retry or cache resolutions without duplicating records.
type Resolver struct {
	table *Table
}

// NewResolver creates a resolver over an immutable table.
func NewResolver(table *Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve translates a code from one vocabulary into the other. The
// returned order is stable across calls for the same input.
func (r *Resolver) Resolve(system terminology.System, code string) []Mapping {
	return r.table.Resolve(system, code)
}
