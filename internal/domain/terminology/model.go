package terminology

import (
	"errors"
	"strings"
)

// System identifies one of the two vocabularies served by this engine.
type System string

const (
	SystemNAMASTE  System = "NAMASTE"
	SystemICD11TM2 System = "ICD11_TM2"
)

// ErrUnknownSystem is returned when an external system tag cannot be
// normalized to one of the two supported vocabularies.
var ErrUnknownSystem = errors.New("unsupported system, use NAM or TM2")

// ParseSystem normalizes the external spellings used by clients ("NAM",
// "NAMASTE", "TM2", "ICD11_TM2") to a System tag. Normalization happens
// only here, at the API boundary; core code dispatches on the tag.
func ParseSystem(s string) (System, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NAM", "NAMASTE":
		return SystemNAMASTE, nil
	case "TM2", "ICD11_TM2", "ICD11-TM2":
		return SystemICD11TM2, nil
	default:
		return "", ErrUnknownSystem
	}
}

// Other returns the opposite vocabulary.
func (s System) Other() System {
	if s == SystemNAMASTE {
		return SystemICD11TM2
	}
	return SystemNAMASTE
}

// Concept is one entry in one vocabulary. (System, Code) is a unique key;
// entries are immutable after load.
type Concept struct {
	System     System `json:"system"`
	Code       string `json:"code"`
	Display    string `json:"display"`
	Definition string `json:"definition,omitempty"`
}

// SearchResponse is the wire shape of both search endpoints.
type SearchResponse struct {
	Concepts []Concept `json:"concepts"`
}
