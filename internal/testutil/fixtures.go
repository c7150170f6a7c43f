package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/resonanceresearch/mentor/internal/domain"
)

var questionCounter atomic.Int64

// Question options
type QuestionOption func(*domain.Question)

func WithWeight(w int) QuestionOption {
	return func(q *domain.Question) { q.Weight = w }
}

func WithRequired() QuestionOption {
	return func(q *domain.Question) { q.Required = true }
}

func WithNoChips() QuestionOption {
	return func(q *domain.Question) { q.NoChips = true }
}

func WithQuestionID(id string) QuestionOption {
	return func(q *domain.Question) { q.ID = id }
}

// NewTestQuestion creates a catalog question with a unique id.
func NewTestQuestion(text string, opts ...QuestionOption) domain.Question {
	n := questionCounter.Add(1)
	q := domain.Question{
		ID:     fmt.Sprintf("q%d", n),
		Text:   text,
		Weight: 1,
		Kind:   domain.QuestionCatalog,
	}
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// NewTestCatalog creates a sequence of n catalog questions.
func NewTestCatalog(n int) []domain.Question {
	qs := make([]domain.Question, n)
	for i := range qs {
		qs[i] = NewTestQuestion(fmt.Sprintf("Test question number %d?", i+1))
	}
	return qs
}

// Answer options
type AnswerOption func(*domain.Answer)

func WithChipsAccepted(chips ...string) AnswerOption {
	return func(a *domain.Answer) { a.ChipsAccepted = chips }
}

// NewTestAnswer creates an answer for the given question id.
func NewTestAnswer(questionID, text string, opts ...AnswerOption) *domain.Answer {
	a := &domain.Answer{
		QuestionID:    questionID,
		Text:          text,
		ChipsAccepted: []string{},
		UpdatedAt:     time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
