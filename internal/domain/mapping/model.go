package mapping

import (
	"fmt"
	"strings"

	"github.com/ayushbridge/terminology-server/internal/domain/terminology"
)

// Relationship qualifies how a source code relates to its target. The
// semantics are direction-specific; a stored mapping and its reverse are
// independent entries.
type Relationship string

const (
	RelEquivalent Relationship = "equivalent"
	RelNarrower   Relationship = "narrower"
	RelBroader    Relationship = "broader"
	RelRelated    Relationship = "related"
)

// ParseRelationship validates a relationship value from seed data.
func ParseRelationship(s string) (Relationship, error) {
	switch Relationship(strings.ToLower(strings.TrimSpace(s))) {
	case RelEquivalent:
		return RelEquivalent, nil
	case RelNarrower:
		return RelNarrower, nil
	case RelBroader:
		return RelBroader, nil
	case RelRelated:
		return RelRelated, nil
	default:
		return "", fmt.Errorf("invalid relationship %q", s)
	}
}

// Inverse returns the relationship seen from the target's side.
// narrower and broader swap; equivalent and related are their own inverse.
func (r Relationship) Inverse() Relationship {
	switch r {
	case RelNarrower:
		return RelBroader
	case RelBroader:
		return RelNarrower
	default:
		return r
	}
}

// Mapping is one directed cross-system equivalence, with optional
// SNOMED CT and LOINC cross-references. Source and target always belong
// to different systems.
type Mapping struct {
	SourceSystem terminology.System `json:"source_system"`
	SourceCode   string             `json:"source_code"`
	TargetSystem terminology.System `json:"target_system"`
	TargetCode   string             `json:"target_code"`
	Relationship Relationship       `json:"relationship"`
	SnomedCTCode string             `json:"snomed_ct_code,omitempty"`
	LoincCode    string             `json:"loinc_code,omitempty"`
}

// TranslateResponse is the ConceptMap-shaped envelope the client expects
// from GET /mapping/translate.
type TranslateResponse struct {
	ResourceType string    `json:"resourceType"`
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Mappings     []Mapping `json:"mappings"`
}
