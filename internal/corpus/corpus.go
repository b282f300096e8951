// Package corpus provides PostgreSQL access to the job posting corpus: the
// record bodies, their extraction labels, and bulk label updates.
package corpus

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/skill-auditor/internal/types"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the postings table if it does not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS job_postings (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			source TEXT NOT NULL DEFAULT '',
			cleaned_text TEXT NOT NULL,
			extracted_skills TEXT NOT NULL DEFAULT '',
			posted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// InsertPosting stores one cleaned posting body and returns its ID.
func (db *DB) InsertPosting(ctx context.Context, source, cleanedText string, postedAt time.Time) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_postings (source, cleaned_text, posted_at)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		source, cleanedText, postedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert posting: %w", err)
	}
	return id, nil
}

// SampleRecords returns up to limit randomly sampled records.
func (db *DB) SampleRecords(ctx context.Context, limit int) ([]types.TextRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, cleaned_text, extracted_skills, posted_at
		 FROM job_postings
		 ORDER BY random()
		 LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to sample records: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// AllRecords returns the full corpus ordered by posting time.
func (db *DB) AllRecords(ctx context.Context) ([]types.TextRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, cleaned_text, extracted_skills, posted_at
		 FROM job_postings
		 ORDER BY posted_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// CountRecords returns the corpus size.
func (db *DB) CountRecords(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// UpdateLabels rewrites the extraction label of every listed record inside a
// single transaction. Either every record is updated or none are; a crash
// mid-batch must not leave the corpus in a mixed old/new state.
func (db *DB) UpdateLabels(ctx context.Context, labels map[uuid.UUID]string) error {
	if len(labels) == 0 {
		return nil
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for id, label := range labels {
		if _, err := tx.Exec(ctx,
			`UPDATE job_postings SET extracted_skills = $1 WHERE id = $2`,
			label, id); err != nil {
			return fmt.Errorf("failed to update record %s: %w", id, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit label updates: %w", err)
	}
	return nil
}

func scanRecords(rows pgx.Rows) ([]types.TextRecord, error) {
	var records []types.TextRecord
	for rows.Next() {
		var rec types.TextRecord
		if err := rows.Scan(&rec.ID, &rec.Text, &rec.Label, &rec.PostedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return records, nil
}
