package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resonanceresearch/mentor/internal/domain"
	"github.com/resonanceresearch/mentor/internal/testutil"
)

func newSubmission(userID string, at time.Time) *domain.Submission {
	return &domain.Submission{
		ID:        uuid.NewString(),
		Key:       domain.SubmissionKey(userID, at),
		UserID:    userID,
		Payload:   `{"answers":[]}`,
		CreatedAt: at,
	}
}

func TestSubmissionRepo_CreateAndGetByKey(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sub := newSubmission("ada", at)
	require.NoError(t, repo.Create(ctx, sub))

	got, err := repo.GetByKey(ctx, sub.Key)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, got.ID)
	assert.Equal(t, "ada", got.UserID)
	assert.Equal(t, `{"answers":[]}`, got.Payload)
	assert.True(t, got.CreatedAt.Equal(at))
}

func TestSubmissionRepo_GetByKeyMissing(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))

	_, err := repo.GetByKey(context.Background(), "2026-01-01T00-00-00_nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmissionRepo_DuplicateKeyRejected(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newSubmission("ada", at)))
	assert.Error(t, repo.Create(ctx, newSubmission("ada", at)), "key collision must surface")
}

func TestSubmissionRepo_ListNewestFirstWithLimit(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		sub := newSubmission(fmt.Sprintf("user%d", i), base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, repo.Create(ctx, sub))
	}

	subs, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, "user4", subs[0].UserID)
	assert.Equal(t, "user2", subs[2].UserID)

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
