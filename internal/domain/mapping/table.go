package mapping

import (
	"fmt"
	"strings"

	"github.com/ayushbridge/terminology-server/internal/domain/terminology"
)

// Row is one authored mapping from the seed data, always written in the
// NAMASTE → ICD-11 TM2 direction.
type Row struct {
	SourceCode   string
	TargetCode   string
	Relationship string
	SnomedCTCode string
	LoincCode    string
}

type tableKey struct {
	system terminology.System
	code   string
}

// Table is the precomputed directed mapping table, immutable after load.
// Each direction is materialized independently: the reverse of an
// authored row is derived at load time with the inverse relationship, so
// resolution never assumes symmetry at query time.
type Table struct {
	entries map[tableKey][]Mapping
}

// NewTable builds the table from authored rows, validating every
// referenced code against the concept store. Bad rows fail the build.
func NewTable(rows []Row, concepts *terminology.Store) (*Table, error) {
	t := &Table{entries: make(map[tableKey][]Mapping)}

	for i, row := range rows {
		if row.SourceCode == "" || row.TargetCode == "" {
			return nil, fmt.Errorf("mapping row %d: source and target codes are required", i+1)
		}
		rel, err := ParseRelationship(row.Relationship)
		if err != nil {
			return nil, fmt.Errorf("mapping row %d: %w", i+1, err)
		}
		if _, ok := concepts.Get(terminology.SystemNAMASTE, row.SourceCode); !ok {
			return nil, fmt.Errorf("mapping row %d: unknown NAMASTE code %q", i+1, row.SourceCode)
		}
		if _, ok := concepts.Get(terminology.SystemICD11TM2, row.TargetCode); !ok {
			return nil, fmt.Errorf("mapping row %d: unknown ICD-11 TM2 code %q", i+1, row.TargetCode)
		}

		forward := Mapping{
			SourceSystem: terminology.SystemNAMASTE,
			SourceCode:   row.SourceCode,
			TargetSystem: terminology.SystemICD11TM2,
			TargetCode:   row.TargetCode,
			Relationship: rel,
			SnomedCTCode: row.SnomedCTCode,
			LoincCode:    row.LoincCode,
		}
		reverse := Mapping{
			SourceSystem: terminology.SystemICD11TM2,
			SourceCode:   row.TargetCode,
			TargetSystem: terminology.SystemNAMASTE,
			TargetCode:   row.SourceCode,
			Relationship: rel.Inverse(),
			SnomedCTCode: row.SnomedCTCode,
			LoincCode:    row.LoincCode,
		}

		t.add(forward)
		t.add(reverse)
	}

	return t, nil
}

func (t *Table) add(m Mapping) {
	k := tableKey{system: m.SourceSystem, code: strings.ToLower(m.SourceCode)}
	t.entries[k] = append(t.entries[k], m)
}

// Resolve returns the mappings for (system, code) in load order. Unknown
// or unmapped codes yield an empty slice; absence is data, not failure.
func (t *Table) Resolve(system terminology.System, code string) []Mapping {
	k := tableKey{system: system, code: strings.ToLower(strings.TrimSpace(code))}
	entries := t.entries[k]
	out := make([]Mapping, len(entries))
	copy(out, entries)
	return out
}

// Len reports the number of directed entries in the table.
func (t *Table) Len() int {
	n := 0
	for _, entries := range t.entries {
		n += len(entries)
	}
	return n
}
