package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/resonanceresearch/mentor/internal/db"
	"github.com/resonanceresearch/mentor/internal/domain"
)

// SQLiteStateRepo implements StateRepo using a SQLite database.
type SQLiteStateRepo struct {
	db db.DBTX
}

// NewSQLiteStateRepo creates a new SQLiteStateRepo.
func NewSQLiteStateRepo(conn db.DBTX) *SQLiteStateRepo {
	return &SQLiteStateRepo{db: conn}
}

func (r *SQLiteStateRepo) Get(ctx context.Context, sessionID string) (*domain.InterviewState, error) {
	query := `SELECT payload FROM interview_state WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, sessionID)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("interview state %s: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning interview state: %w", err)
	}

	var state domain.InterviewState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		// A corrupt blob is indistinguishable from absence for callers:
		// both mean "start fresh".
		return nil, fmt.Errorf("interview state %s unreadable: %w", sessionID, ErrNotFound)
	}
	state.Normalize()
	return &state, nil
}

func (r *SQLiteStateRepo) Put(ctx context.Context, sessionID string, state *domain.InterviewState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding interview state: %w", err)
	}

	query := `INSERT OR REPLACE INTO interview_state (id, payload, updated_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, sessionID, string(payload), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("upserting interview state: %w", err)
	}
	return nil
}

func (r *SQLiteStateRepo) Delete(ctx context.Context, sessionID string) error {
	query := `DELETE FROM interview_state WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, sessionID); err != nil {
		return fmt.Errorf("deleting interview state: %w", err)
	}
	return nil
}
