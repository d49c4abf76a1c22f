// Package seed loads the CSV source data the engine is built from at
// startup: the two vocabularies, the authored cross-mapping rows, and
// the registered ABHA identities.
package seed

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ayushbridge/terminology-server/internal/domain/abha"
	"github.com/ayushbridge/terminology-server/internal/domain/mapping"
	"github.com/ayushbridge/terminology-server/internal/domain/terminology"
)

// File names expected under the configured data directory.
const (
	NAMASTEConceptsFile = "concepts_namaste.csv"
	TM2ConceptsFile     = "concepts_icd11_tm2.csv"
	MappingsFile        = "mappings.csv"
	UsersFile           = "abha_users.csv"
)

func readRows(path string, wantHeader []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	header := rows[0]
	if len(header) != len(wantHeader) {
		return nil, fmt.Errorf("%s: expected columns %v, got %v", path, wantHeader, header)
	}
	for i, col := range wantHeader {
		if header[i] != col {
			return nil, fmt.Errorf("%s: expected column %d to be %q, got %q", path, i+1, col, header[i])
		}
	}
	return rows[1:], nil
}

// LoadConcepts reads one vocabulary file and tags every row with system.
func LoadConcepts(path string, system terminology.System) ([]terminology.Concept, error) {
	rows, err := readRows(path, []string{"code", "display", "definition"})
	if err != nil {
		return nil, err
	}

	concepts := make([]terminology.Concept, 0, len(rows))
	for _, row := range rows {
		concepts = append(concepts, terminology.Concept{
			System:     system,
			Code:       row[0],
			Display:    row[1],
			Definition: row[2],
		})
	}
	return concepts, nil
}

// LoadMappingRows reads the authored NAMASTE → ICD-11 TM2 mapping rows.
func LoadMappingRows(path string) ([]mapping.Row, error) {
	rows, err := readRows(path, []string{"source_code", "target_code", "relationship", "snomed_ct_code", "loinc_code"})
	if err != nil {
		return nil, err
	}

	out := make([]mapping.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapping.Row{
			SourceCode:   row[0],
			TargetCode:   row[1],
			Relationship: row[2],
			SnomedCTCode: row[3],
			LoincCode:    row[4],
		})
	}
	return out, nil
}

// LoadIdentities reads the registered ABHA users.
func LoadIdentities(path string) ([]abha.Identity, error) {
	rows, err := readRows(path, []string{"abha_id", "name", "email", "phone", "dob", "gender", "address"})
	if err != nil {
		return nil, err
	}

	out := make([]abha.Identity, 0, len(rows))
	for _, row := range rows {
		out = append(out, abha.Identity{
			ABHAID:  row[0],
			Name:    row[1],
			Email:   row[2],
			Phone:   row[3],
			DOB:     row[4],
			Gender:  row[5],
			Address: row[6],
		})
	}
	return out, nil
}

// Bundle is everything the engine needs at startup.
type Bundle struct {
	Concepts   []terminology.Concept
	Mappings   []mapping.Row
	Identities []abha.Identity
}

// LoadDir loads all seed files from one data directory.
func LoadDir(dir string) (*Bundle, error) {
	nam, err := LoadConcepts(filepath.Join(dir, NAMASTEConceptsFile), terminology.SystemNAMASTE)
	if err != nil {
		return nil, err
	}
	tm2, err := LoadConcepts(filepath.Join(dir, TM2ConceptsFile), terminology.SystemICD11TM2)
	if err != nil {
		return nil, err
	}
	rows, err := LoadMappingRows(filepath.Join(dir, MappingsFile))
	if err != nil {
		return nil, err
	}
	identities, err := LoadIdentities(filepath.Join(dir, UsersFile))
	if err != nil {
		return nil, err
	}

	return &Bundle{
		Concepts:   append(nam, tm2...),
		Mappings:   rows,
		Identities: identities,
	}, nil
}
