// Package interview owns the session state machine: navigation, answers,
// checklist, adaptive question extension and persistence.
package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/resonanceresearch/mentor/internal/db"
	"github.com/resonanceresearch/mentor/internal/domain"
	"github.com/resonanceresearch/mentor/internal/followup"
	"github.com/resonanceresearch/mentor/internal/repository"
)

// DefaultAdaptiveCap limits how many model-generated questions may be
// appended per session.
const DefaultAdaptiveCap = 6

// Config tunes a Controller.
type Config struct {
	SessionID    string
	UserID       string
	AdaptiveCap  int                 // 0 uses DefaultAdaptiveCap
	ProgressBase domain.ProgressBase // defaults to ProgressCatalogOnly
	LogW         io.Writer           // persistence failures are logged here; nil discards
	Now          func() time.Time    // nil uses time.Now
}

// ChecklistItem is one row of the progress checklist.
type ChecklistItem struct {
	ID     string
	Text   string
	Done   bool
	Weight int
}

// Controller drives the interview. State mutation is synchronous: the state
// is updated and persisted before any asynchronous suggestion work starts,
// so a crash mid-fetch never corrupts it. Not safe for use from multiple
// goroutines; the UI owns it.
type Controller struct {
	catalog   []domain.Question
	questions []domain.Question // catalog followed by adaptive questions
	state     *domain.InterviewState

	states   repository.StateRepo
	subs     repository.SubmissionRepo
	uow      db.UnitOfWork
	followup followup.Service

	sessionID    string
	userID       string
	adaptiveCap  int
	progressBase domain.ProgressBase
	logW         io.Writer
	now          func() time.Time
}

// NewController creates a Controller over the loaded catalog. Call Load to
// restore a persisted session before use.
func NewController(cfg Config, catalog []domain.Question, states repository.StateRepo, subs repository.SubmissionRepo, uow db.UnitOfWork, fu followup.Service) *Controller {
	if cfg.SessionID == "" {
		cfg.SessionID = "default"
	}
	if cfg.AdaptiveCap <= 0 {
		cfg.AdaptiveCap = DefaultAdaptiveCap
	}
	if cfg.ProgressBase == "" {
		cfg.ProgressBase = domain.ProgressCatalogOnly
	}
	if cfg.LogW == nil {
		cfg.LogW = io.Discard
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	questions := make([]domain.Question, len(catalog))
	copy(questions, catalog)

	return &Controller{
		catalog:      catalog,
		questions:    questions,
		state:        domain.NewInterviewState(),
		states:       states,
		subs:         subs,
		uow:          uow,
		followup:     fu,
		sessionID:    cfg.SessionID,
		userID:       cfg.UserID,
		adaptiveCap:  cfg.AdaptiveCap,
		progressBase: cfg.ProgressBase,
		logW:         cfg.LogW,
		now:          cfg.Now,
	}
}

// Load restores the persisted session if one exists. Absence or a corrupt
// blob means a fresh session; that is never an error.
func (c *Controller) Load(ctx context.Context) {
	if c.states == nil {
		return
	}
	state, err := c.states.Get(ctx, c.sessionID)
	if err != nil {
		return
	}
	c.state = state

	// Rebuild the live sequence with the session's adaptive questions.
	c.questions = make([]domain.Question, len(c.catalog), len(c.catalog)+len(state.AdaptiveQuestions))
	copy(c.questions, c.catalog)
	for _, q := range state.AdaptiveQuestions {
		q.Kind = domain.QuestionCustom
		c.questions = append(c.questions, q)
	}

	if c.state.CurrentIndex >= len(c.questions) {
		c.state.CurrentIndex = 0
	}
}

// Current returns the active question and its position.
func (c *Controller) Current() (domain.Question, int) {
	idx := c.state.CurrentIndex
	if idx < 0 || idx >= len(c.questions) {
		return domain.Question{}, idx
	}
	return c.questions[idx], idx
}

// SessionID returns the identifier this session persists under.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// Questions returns the live sequence (catalog plus adaptive).
func (c *Controller) Questions() []domain.Question {
	return c.questions
}

// Finished reports whether the session has reached the terminal state.
// Answers may still be revised afterwards.
func (c *Controller) Finished() bool {
	return c.state.Finished
}

// PlanText returns the generated plan, or empty.
func (c *Controller) PlanText() string {
	return c.state.PlanText
}

// CurrentAnswer returns the answer object for the active question, creating
// it on first visit.
func (c *Controller) CurrentAnswer() *domain.Answer {
	q, _ := c.Current()
	if q.ID == "" {
		return &domain.Answer{}
	}
	return c.state.EnsureAnswer(q.ID, c.now())
}

// ContextAnswers returns a snapshot of all answers, safe to hand to
// background fetches while the live objects keep mutating.
func (c *Controller) ContextAnswers() []*domain.Answer {
	out := make([]*domain.Answer, len(c.state.Answers))
	for i, a := range c.state.Answers {
		cp := *a
		cp.ChipsAccepted = append([]string(nil), a.ChipsAccepted...)
		out[i] = &cp
	}
	return out
}

// SubmitAnswer records the trimmed text for the active question, updates the
// checklist and advances. At the end of the sequence it may extend the
// interview with one adaptive question, or finish.
func (c *Controller) SubmitAnswer(ctx context.Context, text string) {
	q, idx := c.Current()
	if q.ID == "" {
		return
	}

	trimmed := strings.TrimSpace(text)
	a := c.state.EnsureAnswer(q.ID, c.now())
	a.Text = trimmed
	a.UpdatedAt = c.now()
	c.state.Checklist[q.ID] = trimmed != ""
	c.persist(ctx)

	c.advanceFrom(ctx, idx)
}

// Skip moves past the active question without touching its answer.
func (c *Controller) Skip(ctx context.Context) {
	_, idx := c.Current()
	c.advanceFrom(ctx, idx)
}

// Back returns to the previously visited question. With an empty history
// stack it is a silent no-op.
func (c *Controller) Back(ctx context.Context) {
	idx, ok := c.state.PopHistory()
	if !ok {
		return
	}
	c.state.CurrentIndex = idx
	c.persist(ctx)
}

// Finish marks the session finished. Terminal for progress purposes only;
// navigation and edits still work.
func (c *Controller) Finish(ctx context.Context) {
	c.state.Finished = true
	c.persist(ctx)
}

// AcceptChip records that the user clicked a suggestion chip for the active
// question.
func (c *Controller) AcceptChip(ctx context.Context, chip string) {
	q, _ := c.Current()
	if q.ID == "" {
		return
	}
	a := c.state.EnsureAnswer(q.ID, c.now())
	a.AcceptChip(chip, c.now())
	c.persist(ctx)
}

// SetPlanText stores the generated action plan with the session.
func (c *Controller) SetPlanText(ctx context.Context, text string) {
	c.state.PlanText = text
	c.persist(ctx)
}

// Reset discards the persisted session and starts fresh.
func (c *Controller) Reset(ctx context.Context) {
	if c.states != nil {
		if err := c.states.Delete(ctx, c.sessionID); err != nil {
			fmt.Fprintf(c.logW, "state delete failed: %v\n", err)
		}
	}
	c.state = domain.NewInterviewState()
	c.questions = make([]domain.Question, len(c.catalog))
	copy(c.questions, c.catalog)
}

// advanceFrom moves forward from idx, pushing it onto the history stack when
// more questions remain, and otherwise handling the end of the sequence.
func (c *Controller) advanceFrom(ctx context.Context, idx int) {
	if idx < len(c.questions)-1 {
		c.state.PushHistory(idx)
		c.state.CurrentIndex = idx + 1
		c.persist(ctx)
		return
	}
	c.endOfSequence(ctx, idx)
}

// endOfSequence asks for one adaptive follow-up while under the cap;
// otherwise, or when none is granted, the session finishes. Follow-up
// failures are silent: the enhancement path never blocks the interview.
func (c *Controller) endOfSequence(ctx context.Context, idx int) {
	if c.followup == nil || len(c.state.AdaptiveQuestions) >= c.adaptiveCap {
		c.Finish(ctx)
		return
	}

	q, err := c.followup.NextQuestion(ctx, c.ContextAnswers())
	if err != nil || q == nil {
		c.Finish(ctx)
		return
	}

	next := *q
	next.Required = false
	next.Kind = domain.QuestionCustom
	if next.Weight < 1 {
		next.Weight = 1
	}
	c.state.AdaptiveQuestions = append(c.state.AdaptiveQuestions, next)
	c.questions = append(c.questions, next)

	c.state.PushHistory(idx)
	c.state.CurrentIndex = len(c.questions) - 1
	c.persist(ctx)
}

// Progress returns the weighted completion percentage. Finished sessions
// report 100. The weighting base is fixed by configuration: the original
// catalog by default, or the full live sequence.
func (c *Controller) Progress() int {
	if c.state.Finished {
		return 100
	}

	base := c.catalog
	if c.progressBase == domain.ProgressAllQuestions {
		base = c.questions
	}

	total := 0
	done := 0
	for _, q := range base {
		w := q.EffectiveWeight()
		total += w
		if c.state.Checklist[q.ID] {
			done += w
		}
	}
	if total == 0 {
		return 0
	}
	return int(float64(done)/float64(total)*100 + 0.5)
}

// Checklist returns one row per question in the live sequence.
func (c *Controller) Checklist() []ChecklistItem {
	items := make([]ChecklistItem, len(c.questions))
	for i, q := range c.questions {
		items[i] = ChecklistItem{
			ID:     q.ID,
			Text:   q.Text,
			Done:   c.state.Checklist[q.ID],
			Weight: q.EffectiveWeight(),
		}
	}
	return items
}

// SubmitSession archives the current session. Unlike the enhancement paths
// this failure is surfaced: the user explicitly asked for it.
func (c *Controller) SubmitSession(ctx context.Context) (*domain.Submission, error) {
	if c.subs == nil && c.uow == nil {
		return nil, fmt.Errorf("submission storage not configured")
	}

	payload, err := encodeState(c.state)
	if err != nil {
		return nil, fmt.Errorf("encoding session: %w", err)
	}

	now := c.now()
	sub := &domain.Submission{
		ID:        uuid.NewString(),
		Key:       domain.SubmissionKey(c.userID, now),
		UserID:    orAnon(c.userID),
		Payload:   payload,
		CreatedAt: now,
	}

	if c.uow != nil {
		// Archive the submission and the final state snapshot atomically.
		err := c.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			if err := repository.NewSQLiteSubmissionRepo(tx).Create(ctx, sub); err != nil {
				return err
			}
			return repository.NewSQLiteStateRepo(tx).Put(ctx, c.sessionID, c.state)
		})
		if err != nil {
			return nil, fmt.Errorf("archiving session: %w", err)
		}
		return sub, nil
	}

	if err := c.subs.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("archiving session: %w", err)
	}
	return sub, nil
}

// persist writes the state blob. Storage failures are logged and swallowed;
// the session continues in memory.
func (c *Controller) persist(ctx context.Context) {
	if c.states == nil {
		return
	}
	if err := c.states.Put(ctx, c.sessionID, c.state); err != nil {
		fmt.Fprintf(c.logW, "state persist failed: %v\n", err)
	}
}

func orAnon(userID string) string {
	if userID == "" {
		return "anon"
	}
	return userID
}

func encodeState(state *domain.InterviewState) (string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
