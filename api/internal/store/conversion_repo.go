package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"
)

// ConversionRepo is a write-mostly audit log. The conversion pipeline
// itself is stateless; a failed insert never affects the returned text.
type ConversionRepo struct{ DB *sql.DB }

func NewConversionRepo(db *sql.DB) *ConversionRepo { return &ConversionRepo{DB: db} }

type ConversionRecord struct {
	ID        int64     `json:"id"`
	Engine    string    `json:"engine"`
	Model     string    `json:"model"`
	InputHash string    `json:"input_hash"`
	Warnings  int       `json:"warnings"`
	CreatedAt time.Time `json:"created_at"`
}

// HashInput fingerprints the raw input so the log never stores customer SQL.
func HashInput(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func (r *ConversionRepo) Insert(ctx context.Context, engine, model, inputHash string, warnings int) error {
	const q = `
insert into conversions(engine, model, input_hash, warnings)
values ($1,$2,$3,$4)`
	_, err := r.DB.ExecContext(ctx, q, engine, model, inputHash, warnings)
	return err
}

// Recent returns the newest records, capped at limit.
func (r *ConversionRepo) Recent(ctx context.Context, limit int) ([]ConversionRecord, error) {
	const q = `select id, engine, model, input_hash, warnings, created_at
	           from conversions
	           order by created_at desc
	           limit $1`
	rows, err := r.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ConversionRecord
	for rows.Next() {
		var rec ConversionRecord
		if err := rows.Scan(&rec.ID, &rec.Engine, &rec.Model, &rec.InputHash, &rec.Warnings, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// EnsureSchema creates the conversions table when it does not exist yet.
func (r *ConversionRepo) EnsureSchema(ctx context.Context) error {
	const q = `
create table if not exists conversions (
    id          bigserial primary key,
    engine      text not null,
    model       text not null,
    input_hash  text not null,
    warnings    int  not null default 0,
    created_at  timestamptz not null default now()
)`
	_, err := r.DB.ExecContext(ctx, q)
	return err
}
