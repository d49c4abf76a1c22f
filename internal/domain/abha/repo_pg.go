package abha

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG creates a Postgres-backed identity repository.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const identityCols = `abha_id, name, email, phone, dob, gender, address, created_at`

func (r *repoPG) GetByABHAID(ctx context.Context, abhaID string) (*Identity, error) {
	var id Identity
	err := r.pool.QueryRow(ctx, `SELECT `+identityCols+` FROM abha_user WHERE abha_id = $1`, abhaID).
		Scan(&id.ABHAID, &id.Name, &id.Email, &id.Phone, &id.DOB, &id.Gender, &id.Address, &id.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// EnsureSchema creates the identity table.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS abha_user (
			abha_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL,
			dob TEXT NOT NULL DEFAULT '',
			gender TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

// SeedIdentities loads seed users, leaving already-provisioned rows
// untouched. Identities are read-only to the running service; this is
// the out-of-band provisioning path.
func SeedIdentities(ctx context.Context, pool *pgxpool.Pool, identities []Identity) error {
	for _, id := range identities {
		_, err := pool.Exec(ctx, `
			INSERT INTO abha_user (abha_id, name, email, phone, dob, gender, address)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
			ON CONFLICT (abha_id) DO NOTHING`,
			id.ABHAID, id.Name, id.Email, id.Phone, id.DOB, id.Gender, id.Address)
		if err != nil {
			return err
		}
	}
	return nil
}
