package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run represents one recorded equivalence search.
type Run struct {
	RunID            string
	CreatedAt        time.Time
	EdgeLength       int
	InputMoves       string
	Bound            int
	SequenceCount    int
	ExploratoryMoves uint64
}

// RunRepository provides access to recorded runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Save stores a completed search run together with its solution
// sequences and returns the new run's ID.
func (r *RunRepository) Save(edgeLength int, inputMoves string, bound int, exploratory uint64, sequences []string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO runs (run_id, created_at, edge_length, input_moves, bound, sequence_count, exploratory_moves)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, id, createdAt.Format(time.RFC3339Nano), edgeLength, inputMoves, bound, len(sequences), exploratory)
		if err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}

		for i, seq := range sequences {
			if _, err := tx.Exec(`
				INSERT INTO sequences (run_id, position, moves)
				VALUES (?, ?, ?)
			`, id, i, seq); err != nil {
				return fmt.Errorf("failed to insert sequence %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// List returns the most recent runs, newest first.
func (r *RunRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT run_id, created_at, edge_length, input_moves, bound, sequence_count, exploratory_moves
		FROM runs
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(&run.RunID, &createdAt, &run.EdgeLength, &run.InputMoves, &run.Bound, &run.SequenceCount, &run.ExploratoryMoves); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run timestamp: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Sequences returns the solution sequences of a run in discovery order.
func (r *RunRepository) Sequences(runID string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT moves FROM sequences
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sequences: %w", err)
	}
	defer rows.Close()

	var seqs []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan sequence: %w", err)
		}
		seqs = append(seqs, s)
	}
	return seqs, rows.Err()
}
