package history

import "time"

// Record is one saved translation event. Records are append-only: they
// are never mutated or deleted, and are visible only to their owner.
type Record struct {
	ID           int64     `db:"id" json:"id"`
	ABHAID       string    `db:"abha_id" json:"abha_id"`
	SourceSystem string    `db:"source_system" json:"source_system"`
	SourceCode   string    `db:"source_code" json:"source_code"`
	TargetSystem string    `db:"target_system" json:"target_system"`
	TargetCode   string    `db:"target_code" json:"target_code"`
	SnomedCTCode string    `db:"snomed_ct_code" json:"snomed_ct_code,omitempty"`
	LoincCode    string    `db:"loinc_code" json:"loinc_code,omitempty"`
	Timestamp    time.Time `db:"created_at" json:"timestamp"`
}

// Entry is the caller-supplied part of a record. ID and Timestamp are
// assigned by the store, never by the client.
type Entry struct {
	SourceSystem string
	SourceCode   string
	TargetSystem string
	TargetCode   string
	SnomedCTCode string
	LoincCode    string
}

// ListResponse is the wire shape of GET /abha/translation-history.
type ListResponse struct {
	History []*Record `json:"history"`
}
