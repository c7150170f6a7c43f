package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/resonanceresearch/mentor/internal/db"
)

// SQLiteKeywordCacheRepo implements KeywordCacheRepo using a SQLite database.
type SQLiteKeywordCacheRepo struct {
	db db.DBTX
}

// NewSQLiteKeywordCacheRepo creates a new SQLiteKeywordCacheRepo.
func NewSQLiteKeywordCacheRepo(conn db.DBTX) *SQLiteKeywordCacheRepo {
	return &SQLiteKeywordCacheRepo{db: conn}
}

func (r *SQLiteKeywordCacheRepo) Get(ctx context.Context, key string, now time.Time) ([]string, error) {
	query := `SELECT payload, expires_at FROM keyword_cache WHERE key = ?`
	row := r.db.QueryRowContext(ctx, query, key)

	var payload, expiresAt string
	if err := row.Scan(&payload, &expiresAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("keyword cache %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning keyword cache: %w", err)
	}

	exp, err := time.Parse(time.RFC3339, expiresAt)
	if err != nil || !now.Before(exp) {
		// Expired entries are lazily evicted on read.
		_, _ = r.db.ExecContext(ctx, `DELETE FROM keyword_cache WHERE key = ?`, key)
		return nil, fmt.Errorf("keyword cache %s expired: %w", key, ErrNotFound)
	}

	var keywords []string
	if err := json.Unmarshal([]byte(payload), &keywords); err != nil {
		return nil, fmt.Errorf("keyword cache %s unreadable: %w", key, ErrNotFound)
	}
	return keywords, nil
}

func (r *SQLiteKeywordCacheRepo) Put(ctx context.Context, key string, keywords []string, expiresAt time.Time) error {
	payload, err := json.Marshal(keywords)
	if err != nil {
		return fmt.Errorf("encoding keywords: %w", err)
	}

	query := `INSERT OR REPLACE INTO keyword_cache (key, payload, expires_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, key, string(payload), expiresAt.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("upserting keyword cache: %w", err)
	}
	return nil
}
