package terminology

import "testing"

func TestService_SearchUsesConfiguredLimit(t *testing.T) {
	var concepts []Concept
	for i := 0; i < 10; i++ {
		concepts = append(concepts, Concept{
			System:  SystemICD11TM2,
			Code:    "SP" + string(rune('0'+i)) + "0",
			Display: "Pattern disorder",
		})
	}
	store, err := NewStore(concepts)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	svc := NewService(store, 3)
	if got := svc.Search(SystemICD11TM2, "pattern"); len(got) != 3 {
		t.Errorf("expected 3 results, got %d", len(got))
	}
}

func TestService_ZeroLimitFallsBackToDefault(t *testing.T) {
	store, err := NewStore(nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	svc := NewService(store, 0)
	if svc.limit != 50 {
		t.Errorf("expected default limit 50, got %d", svc.limit)
	}
}

func TestService_Count(t *testing.T) {
	store, err := NewStore([]Concept{
		{System: SystemNAMASTE, Code: "NAM-0101", Display: "Jvara"},
		{System: SystemICD11TM2, Code: "SP75", Display: "Fever disorder"},
		{System: SystemICD11TM2, Code: "SP90", Display: "Cough disorder"},
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	svc := NewService(store, 50)
	if svc.Count(SystemNAMASTE) != 1 || svc.Count(SystemICD11TM2) != 2 {
		t.Errorf("unexpected counts: %d, %d", svc.Count(SystemNAMASTE), svc.Count(SystemICD11TM2))
	}
}
