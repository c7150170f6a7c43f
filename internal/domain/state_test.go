package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureAnswer_CreatesOncePerQuestion(t *testing.T) {
	s := NewInterviewState()
	now := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)

	a := s.EnsureAnswer("interests", now)
	require.NotNil(t, a)
	a.Text = "computational genomics"

	again := s.EnsureAnswer("interests", now.Add(time.Minute))
	assert.Same(t, a, again)
	assert.Len(t, s.Answers, 1)
	assert.Equal(t, "computational genomics", again.Text)
}

func TestHistoryStack(t *testing.T) {
	s := NewInterviewState()

	_, ok := s.PopHistory()
	assert.False(t, ok)

	s.PushHistory(0)
	s.PushHistory(3)

	idx, ok := s.PopHistory()
	require.True(t, ok)
	assert.Equal(t, 3, idx)

	idx, ok = s.PopHistory()
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = s.PopHistory()
	assert.False(t, ok)
}

func TestNormalize_RepairsLoadedState(t *testing.T) {
	s := &InterviewState{
		CurrentIndex: -2,
		Answers:      []*Answer{{QuestionID: "interests"}},
	}

	s.Normalize()

	assert.NotNil(t, s.Checklist)
	assert.NotNil(t, s.Answers[0].ChipsAccepted)
	assert.Equal(t, 0, s.CurrentIndex)
}

func TestAcceptChip_PreservesOrder(t *testing.T) {
	a := &Answer{QuestionID: "interests"}
	now := time.Now()

	a.AcceptChip("Long-read sequencing", now)
	a.AcceptChip("Variant calling pipelines", now.Add(time.Second))

	assert.Equal(t, []string{"Long-read sequencing", "Variant calling pipelines"}, a.ChipsAccepted)
	assert.Equal(t, now.Add(time.Second), a.UpdatedAt)
}

func TestSubmissionKey(t *testing.T) {
	at := time.Date(2026, 2, 14, 9, 30, 5, 0, time.UTC)

	assert.Equal(t, "2026-02-14T09-30-05_ada", SubmissionKey("ada", at))
	assert.Equal(t, "2026-02-14T09-30-05_anon", SubmissionKey("", at))

	// Eastern time 9:30 is 14:30 UTC; keys always use UTC.
	est := time.FixedZone("EST", -5*3600)
	assert.Equal(t, "2026-02-14T14-30-05_ada", SubmissionKey("ada", at.In(est).Add(5*time.Hour)))
}

func TestEffectiveWeight(t *testing.T) {
	assert.Equal(t, 1, Question{}.EffectiveWeight())
	assert.Equal(t, 1, Question{Weight: -3}.EffectiveWeight())
	assert.Equal(t, 4, Question{Weight: 4}.EffectiveWeight())
}

func TestResourceMatches(t *testing.T) {
	r := Resource{
		Title: "NSF CAREER Program",
		URL:   "https://www.nsf.gov/funding",
		Tags:  []string{"funding", "early-career"},
		Notes: "Five-year awards for junior faculty.",
	}

	assert.True(t, r.Matches(""))
	assert.True(t, r.Matches("career"))
	assert.True(t, r.Matches("FUNDING"))
	assert.True(t, r.Matches("junior"))
	assert.False(t, r.Matches("oceanography"))
}
