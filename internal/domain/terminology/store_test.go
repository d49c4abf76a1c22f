package terminology

import (
	"fmt"
	"testing"
)

func testConcepts() []Concept {
	return []Concept{
		{System: SystemNAMASTE, Code: "NAM-0101", Display: "Jvara (Fever)", Definition: "Pyrexial disorder characterised by elevated body temperature"},
		{System: SystemNAMASTE, Code: "NAM-0102", Display: "Kasa (Cough)", Definition: "Disorder of the respiratory tract with forceful expulsion of air"},
		{System: SystemNAMASTE, Code: "NAM-0103", Display: "Atisara (Diarrhoea)", Definition: "Frequent loose stools"},
		{System: SystemNAMASTE, Code: "NAM-0205", Display: "Shirahshula (Headache)", Definition: "Pain localised to the head"},
		{System: SystemICD11TM2, Code: "SP75", Display: "Fever disorder (TM2)", Definition: "Heat pattern with raised body temperature"},
		{System: SystemICD11TM2, Code: "SP90", Display: "Cough disorder (TM2)", Definition: ""},
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(testConcepts())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestNewStore_RejectsDuplicates(t *testing.T) {
	concepts := testConcepts()
	concepts = append(concepts, Concept{System: SystemNAMASTE, Code: "nam-0101", Display: "dup"})
	if _, err := NewStore(concepts); err == nil {
		t.Error("expected error for duplicate (system, code)")
	}
}

func TestNewStore_RejectsUnknownSystem(t *testing.T) {
	if _, err := NewStore([]Concept{{System: "ICD10", Code: "A00", Display: "Cholera"}}); err == nil {
		t.Error("expected error for unknown system")
	}
}

func TestSearch_ExactCodeRanksFirst(t *testing.T) {
	s := newTestStore(t)

	// Every loaded concept must come back first for its own code.
	for _, c := range testConcepts() {
		got := s.Search(c.System, c.Code, 50)
		if len(got) == 0 {
			t.Fatalf("Search(%s, %s) returned nothing", c.System, c.Code)
		}
		if got[0].Code != c.Code {
			t.Errorf("Search(%s, %s): first result %s, want %s", c.System, c.Code, got[0].Code, c.Code)
		}
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	s := newTestStore(t)

	for _, q := range []string{"", "   ", "\t\n"} {
		for _, sys := range []System{SystemNAMASTE, SystemICD11TM2} {
			if got := s.Search(sys, q, 50); len(got) != 0 {
				t.Errorf("Search(%s, %q) = %d results, want 0", sys, q, len(got))
			}
		}
	}
}

func TestSearch_DisplayPrefixBeforeSubstring(t *testing.T) {
	s := newTestStore(t)

	// "fever" is a display prefix for SP75 and a definition substring
	// for no other TM2 concept; in NAMASTE it appears inside displays
	// and definitions only.
	got := s.Search(SystemICD11TM2, "fever", 50)
	if len(got) != 1 || got[0].Code != "SP75" {
		t.Fatalf("Search(TM2, fever) = %v, want [SP75]", codes(got))
	}

	got = s.Search(SystemNAMASTE, "fever", 50)
	if len(got) != 1 || got[0].Code != "NAM-0101" {
		t.Fatalf("Search(NAM, fever) = %v, want [NAM-0101]", codes(got))
	}
}

func TestSearch_TiesBrokenByCode(t *testing.T) {
	s := newTestStore(t)

	// "disorder" is a definition/display substring of several concepts.
	got := s.Search(SystemNAMASTE, "disorder", 50)
	for i := 1; i < len(got); i++ {
		if got[i-1].Code > got[i].Code {
			t.Errorf("results out of code order: %v", codes(got))
		}
	}
	if len(got) != 2 {
		t.Errorf("Search(NAM, disorder) = %v, want NAM-0101 and NAM-0102", codes(got))
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	s := newTestStore(t)

	upper := s.Search(SystemNAMASTE, "JVARA", 50)
	lower := s.Search(SystemNAMASTE, "jvara", 50)
	if len(upper) != len(lower) || len(upper) == 0 {
		t.Fatalf("case sensitivity: upper=%v lower=%v", codes(upper), codes(lower))
	}
}

func TestSearch_CapsResults(t *testing.T) {
	var concepts []Concept
	for i := 0; i < 80; i++ {
		concepts = append(concepts, Concept{
			System:  SystemNAMASTE,
			Code:    fmt.Sprintf("NAM-9%03d", i),
			Display: "Common pattern disorder",
		})
	}
	s, err := NewStore(concepts)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if got := s.Search(SystemNAMASTE, "pattern", 50); len(got) != 50 {
		t.Errorf("expected 50 capped results, got %d", len(got))
	}
}

func TestSearch_NonAlphanumericQuery(t *testing.T) {
	s := newTestStore(t)

	// Queries with separators bypass the token index but must still match.
	got := s.Search(SystemNAMASTE, "nam-0101", 50)
	if len(got) == 0 || got[0].Code != "NAM-0101" {
		t.Errorf("Search(NAM, nam-0101) = %v, want NAM-0101 first", codes(got))
	}
}

func TestGet(t *testing.T) {
	s := newTestStore(t)

	c, ok := s.Get(SystemNAMASTE, "NAM-0101")
	if !ok || c.Display != "Jvara (Fever)" {
		t.Errorf("Get(NAM, NAM-0101) = %+v, %v", c, ok)
	}

	if _, ok := s.Get(SystemICD11TM2, "NAM-0101"); ok {
		t.Error("Get must not cross systems")
	}
	if _, ok := s.Get(SystemNAMASTE, "NOPE"); ok {
		t.Error("Get(unknown) must report not found")
	}
}

func codes(concepts []Concept) []string {
	out := make([]string, len(concepts))
	for i, c := range concepts {
		out[i] = c.Code
	}
	return out
}
