package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resonanceresearch/mentor/internal/domain"
	"github.com/resonanceresearch/mentor/internal/testutil"
)

func TestStateRepo_RoundTrip(t *testing.T) {
	repo := NewSQLiteStateRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	state := domain.NewInterviewState()
	state.CurrentIndex = 3
	state.PushHistory(0)
	state.PushHistory(1)
	state.Checklist["interests"] = true
	a := state.EnsureAnswer("interests", time.Now())
	a.Text = "computational ecology"
	a.AcceptChip("Species distribution models", time.Now())

	require.NoError(t, repo.Put(ctx, "s1", state))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.CurrentIndex)
	assert.Equal(t, []int{0, 1}, got.History)
	assert.True(t, got.Checklist["interests"])
	require.Len(t, got.Answers, 1)
	assert.Equal(t, "computational ecology", got.Answers[0].Text)
	assert.Equal(t, []string{"Species distribution models"}, got.Answers[0].ChipsAccepted)
}

func TestStateRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteStateRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStateRepo_CorruptBlobReadsAsNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStateRepo(database)
	ctx := context.Background()

	_, err := database.ExecContext(ctx,
		`INSERT INTO interview_state (id, payload, updated_at) VALUES (?, ?, ?)`,
		"bad", "{not json", "2026-01-01T00:00:00Z")
	require.NoError(t, err)

	_, err = repo.Get(ctx, "bad")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStateRepo_PutReplaces(t *testing.T) {
	repo := NewSQLiteStateRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := domain.NewInterviewState()
	first.CurrentIndex = 1
	require.NoError(t, repo.Put(ctx, "s1", first))

	second := domain.NewInterviewState()
	second.CurrentIndex = 5
	require.NoError(t, repo.Put(ctx, "s1", second))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 5, got.CurrentIndex)
}

func TestStateRepo_Delete(t *testing.T) {
	repo := NewSQLiteStateRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "s1", domain.NewInterviewState()))
	require.NoError(t, repo.Delete(ctx, "s1"))

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, repo.Delete(ctx, "never-existed"))
}
