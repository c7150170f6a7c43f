package repository

import (
	"context"
	"errors"
	"time"

	"github.com/resonanceresearch/mentor/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// StateRepo persists the interview session as a single serialized blob keyed
// by session id. Absence is reported as ErrNotFound, never treated as fatal.
type StateRepo interface {
	Get(ctx context.Context, sessionID string) (*domain.InterviewState, error)
	Put(ctx context.Context, sessionID string, state *domain.InterviewState) error
	Delete(ctx context.Context, sessionID string) error
}

// SubmissionRepo archives finished sessions.
type SubmissionRepo interface {
	Create(ctx context.Context, sub *domain.Submission) error
	GetByKey(ctx context.Context, key string) (*domain.Submission, error)
	List(ctx context.Context, limit int) ([]*domain.Submission, error)
}

// KeywordCacheRepo stores ranked keyword lists from bibliographic lookups
// with an expiry, so repeated identity queries skip the network.
type KeywordCacheRepo interface {
	Get(ctx context.Context, key string, now time.Time) ([]string, error)
	Put(ctx context.Context, key string, keywords []string, expiresAt time.Time) error
}
