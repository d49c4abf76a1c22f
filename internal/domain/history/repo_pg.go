package history

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG creates a Postgres-backed history repository. Id assignment
// and created_at both come from the database, so concurrent appends
// cannot collide or go backwards.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const historyCols = `id, abha_id, source_system, source_code, target_system, target_code,
	snomed_ct_code, loinc_code, created_at`

// EnsureSchema creates the history table and its owner index.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS translation_history (
			id BIGSERIAL PRIMARY KEY,
			abha_id TEXT NOT NULL,
			source_system TEXT NOT NULL,
			source_code TEXT NOT NULL,
			target_system TEXT NOT NULL,
			target_code TEXT NOT NULL,
			snomed_ct_code TEXT NOT NULL DEFAULT '',
			loinc_code TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS translation_history_abha_id_idx
		ON translation_history (abha_id, created_at DESC)`)
	return err
}

func scanRecord(row pgx.Row) (*Record, error) {
	var r Record
	err := row.Scan(&r.ID, &r.ABHAID, &r.SourceSystem, &r.SourceCode,
		&r.TargetSystem, &r.TargetCode, &r.SnomedCTCode, &r.LoincCode, &r.Timestamp)
	return &r, err
}

func (r *repoPG) Append(ctx context.Context, abhaID string, e Entry) (*Record, error) {
	return scanRecord(r.pool.QueryRow(ctx, `
		INSERT INTO translation_history
			(abha_id, source_system, source_code, target_system, target_code, snomed_ct_code, loinc_code)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING `+historyCols,
		abhaID, e.SourceSystem, e.SourceCode, e.TargetSystem, e.TargetCode, e.SnomedCTCode, e.LoincCode))
}

func (r *repoPG) ListByUser(ctx context.Context, abhaID string) ([]*Record, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+historyCols+` FROM translation_history
		WHERE abha_id = $1
		ORDER BY created_at DESC, id DESC`, abhaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
