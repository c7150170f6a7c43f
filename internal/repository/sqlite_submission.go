package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/resonanceresearch/mentor/internal/db"
	"github.com/resonanceresearch/mentor/internal/domain"
)

// SQLiteSubmissionRepo implements SubmissionRepo using a SQLite database.
type SQLiteSubmissionRepo struct {
	db db.DBTX
}

// NewSQLiteSubmissionRepo creates a new SQLiteSubmissionRepo.
func NewSQLiteSubmissionRepo(conn db.DBTX) *SQLiteSubmissionRepo {
	return &SQLiteSubmissionRepo{db: conn}
}

func (r *SQLiteSubmissionRepo) Create(ctx context.Context, sub *domain.Submission) error {
	query := `INSERT INTO submissions (id, key, user_id, payload, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		sub.ID,
		sub.Key,
		sub.UserID,
		sub.Payload,
		sub.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}
	return nil
}

func (r *SQLiteSubmissionRepo) GetByKey(ctx context.Context, key string) (*domain.Submission, error) {
	query := `SELECT id, key, user_id, payload, created_at FROM submissions WHERE key = ?`
	row := r.db.QueryRowContext(ctx, query, key)

	sub, err := scanSubmission(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("submission %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning submission: %w", err)
	}
	return sub, nil
}

func (r *SQLiteSubmissionRepo) List(ctx context.Context, limit int) ([]*domain.Submission, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT id, key, user_id, payload, created_at FROM submissions
		ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var subs []*domain.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning submission row: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submissions: %w", err)
	}
	return subs, nil
}

func scanSubmission(scan func(dest ...any) error) (*domain.Submission, error) {
	var sub domain.Submission
	var createdAt string
	if err := scan(&sub.ID, &sub.Key, &sub.UserID, &sub.Payload, &createdAt); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	sub.CreatedAt = t
	return &sub, nil
}
