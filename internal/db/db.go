// Package db provides optional PostgreSQL persistence for ranking runs.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-ranker/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// RunSummary describes one persisted ranking run.
type RunSummary struct {
	ID             uuid.UUID `json:"id"`
	RequiredSkills []string  `json:"required_skills"`
	CandidateCount int       `json:"candidate_count"`
	FailureCount   int       `json:"failure_count"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// Connect establishes a connection pool to the database
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

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateRun creates a new ranking run record and returns its ID
func (db *DB) CreateRun(ctx context.Context, job *types.JobDescription) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO ranking_runs (job_text, required_skills, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		job.RawText, job.RequiredSkills,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a ranking run as finished
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE ranking_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveCandidate stores one ranked candidate row for a run. Rank is the
// 1-based position in the sorted results.
func (db *DB) SaveCandidate(ctx context.Context, runID uuid.UUID, rank int, c *types.Candidate) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO ranking_candidates (id, run_id, rank, source_filename, name, emails, phones, skills, score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, runID, rank, c.SourceFilename, c.Name, c.Emails, c.Phones, c.Skills, c.Score,
	)
	if err != nil {
		return fmt.Errorf("failed to save candidate %s: %w", c.SourceFilename, err)
	}
	return nil
}

// SaveFailure stores one per-file failure for a run
func (db *DB) SaveFailure(ctx context.Context, runID uuid.UUID, failure *types.FileFailure) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO ranking_failures (run_id, source_filename, reason)
		 VALUES ($1, $2, $3)`,
		runID, failure.SourceFilename, failure.Reason,
	)
	if err != nil {
		return fmt.Errorf("failed to save failure for %s: %w", failure.SourceFilename, err)
	}
	return nil
}

// ListRuns returns the most recent ranking runs, newest first
func (db *DB) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT r.id, r.required_skills, r.status, r.created_at,
		        (SELECT COUNT(*) FROM ranking_candidates c WHERE c.run_id = r.id),
		        (SELECT COUNT(*) FROM ranking_failures f WHERE f.run_id = r.id)
		 FROM ranking_runs r
		 ORDER BY r.created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var run RunSummary
		if err := rows.Scan(&run.ID, &run.RequiredSkills, &run.Status, &run.CreatedAt,
			&run.CandidateCount, &run.FailureCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRunCandidates returns the persisted candidates of a run in rank order
func (db *DB) GetRunCandidates(ctx context.Context, runID uuid.UUID) ([]types.Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, source_filename, name, emails, phones, skills, score
		 FROM ranking_candidates
		 WHERE run_id = $1
		 ORDER BY rank ASC`,
		runID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run candidates: %w", err)
	}
	defer rows.Close()

	var candidates []types.Candidate
	for rows.Next() {
		var c types.Candidate
		if err := rows.Scan(&c.ID, &c.SourceFilename, &c.Name, &c.Emails, &c.Phones, &c.Skills, &c.Score); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
