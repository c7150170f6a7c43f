package domain

import "time"

// InterviewState is the full mutable session: position, answer history,
// checklist completion and the generated plan. It owns the Answer collection
// exclusively and is persisted as one blob after every mutation.
type InterviewState struct {
	CurrentIndex int             `json:"currentIndex"`
	Answers      []*Answer       `json:"answers"`
	Checklist    map[string]bool `json:"checklist"`
	History      []int           `json:"history"`
	Finished     bool            `json:"finished"`
	PlanText     string          `json:"planText"`

	// Adaptive questions appended this session, kept with the state so a
	// reloaded session sees the same live sequence.
	AdaptiveQuestions []Question `json:"adaptiveQuestions,omitempty"`
}

// NewInterviewState returns an empty session positioned at the first question.
func NewInterviewState() *InterviewState {
	return &InterviewState{
		Checklist: map[string]bool{},
	}
}

// AnswerFor returns the answer recorded for the given question id, or nil.
func (s *InterviewState) AnswerFor(questionID string) *Answer {
	for _, a := range s.Answers {
		if a.QuestionID == questionID {
			return a
		}
	}
	return nil
}

// EnsureAnswer returns the answer for the question id, creating an empty one
// if this is the first visit. Uniqueness by question id is preserved.
func (s *InterviewState) EnsureAnswer(questionID string, now time.Time) *Answer {
	if a := s.AnswerFor(questionID); a != nil {
		return a
	}
	a := &Answer{
		QuestionID:    questionID,
		ChipsAccepted: []string{},
		UpdatedAt:     now,
	}
	s.Answers = append(s.Answers, a)
	return a
}

// PushHistory records the index being left so Back can return to it.
func (s *InterviewState) PushHistory(index int) {
	s.History = append(s.History, index)
}

// PopHistory removes and returns the most recent index. The second return is
// false when the history stack is empty.
func (s *InterviewState) PopHistory() (int, bool) {
	if len(s.History) == 0 {
		return 0, false
	}
	idx := s.History[len(s.History)-1]
	s.History = s.History[:len(s.History)-1]
	return idx, true
}

// Normalize repairs a state loaded from storage: nil maps and slices become
// usable zero values so a partially written blob never breaks the session.
func (s *InterviewState) Normalize() {
	if s.Checklist == nil {
		s.Checklist = map[string]bool{}
	}
	for _, a := range s.Answers {
		if a.ChipsAccepted == nil {
			a.ChipsAccepted = []string{}
		}
	}
	if s.CurrentIndex < 0 {
		s.CurrentIndex = 0
	}
}
