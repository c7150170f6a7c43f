// Package followup generates adaptive follow-up questions once the fixed
// catalog is exhausted.
package followup

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/resonanceresearch/mentor/internal/domain"
	"github.com/resonanceresearch/mentor/internal/llm"
)

// Service produces at most one follow-up question per call. A nil question
// with a nil error means "no further adaptive question"; callers treat any
// error the same way, silently.
type Service interface {
	NextQuestion(ctx context.Context, answers []*domain.Answer) (*domain.Question, error)
}

type llmService struct {
	client llm.Client
}

// NewService creates a Service backed by the language model.
func NewService(client llm.Client) Service {
	return &llmService{client: client}
}

type followupResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (s *llmService) NextQuestion(ctx context.Context, answers []*domain.Answer) (*domain.Question, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskFollowup,
		SystemPrompt: followupSystemPrompt,
		UserPrompt:   buildFollowupPrompt(answers),
		JSONObject:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("generating follow-up question: %w", err)
	}

	parsed, err := llm.ExtractJSON[followupResponse](resp.Text, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing follow-up question: %w", err)
	}
	if parsed.Text == "" {
		// The model declined; the interview just finishes.
		return nil, nil
	}

	id := strings.TrimSpace(parsed.ID)
	if id == "" {
		id = "custom_" + uuid.NewString()[:8]
	}

	return &domain.Question{
		ID:       id,
		Text:     parsed.Text,
		Required: false,
		Weight:   1,
		Kind:     domain.QuestionCustom,
	}, nil
}

const followupSystemPrompt = `You are conducting a research mentoring interview. The fixed questions are done.
Propose AT MOST one short follow-up question that fills the most important gap in the answers so far.
Rules:
- One question, a single sentence.
- Only ask if a concrete gap exists; otherwise return empty text.
Return JSON strictly of the form: {"id": "short_snake_case_id", "text": "..."}. Use {"id": "", "text": ""} when no question is needed.`

func buildFollowupPrompt(answers []*domain.Answer) string {
	var b strings.Builder
	b.WriteString("Answers so far:\n")
	if len(answers) == 0 {
		b.WriteString("(none)\n")
	}
	for _, a := range answers {
		fmt.Fprintf(&b, "%s: %s\n", a.QuestionID, a.Text)
	}
	return b.String()
}
