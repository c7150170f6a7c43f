package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resonanceresearch/mentor/internal/testutil"
)

func TestKeywordCache_RoundTripWithinTTL(t *testing.T) {
	repo := NewSQLiteKeywordCacheRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Put(ctx, "openalex:keywords:Ada|Uni", []string{"Genomics", "Ecology"}, now.Add(7*24*time.Hour)))

	got, err := repo.Get(ctx, "openalex:keywords:Ada|Uni", now.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []string{"Genomics", "Ecology"}, got)
}

func TestKeywordCache_ExpiredEntryEvicted(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteKeywordCacheRepo(database)
	ctx := context.Background()
	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Put(ctx, "k", []string{"Stale"}, now.Add(time.Hour)))

	_, err := repo.Get(ctx, "k", now.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrNotFound)

	// The expired row was deleted on read.
	var count int
	require.NoError(t, database.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM keyword_cache WHERE key = 'k'`).Scan(&count))
	assert.Zero(t, count)
}

func TestKeywordCache_MissingKey(t *testing.T) {
	repo := NewSQLiteKeywordCacheRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "absent", time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKeywordCache_PutReplaces(t *testing.T) {
	repo := NewSQLiteKeywordCacheRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Put(ctx, "k", []string{"Old"}, now.Add(time.Hour)))
	require.NoError(t, repo.Put(ctx, "k", []string{"New"}, now.Add(time.Hour)))

	got, err := repo.Get(ctx, "k", now)
	require.NoError(t, err)
	assert.Equal(t, []string{"New"}, got)
}
