// Package plan synthesizes the narrative action plan from the finished (or
// in-progress) interview.
package plan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resonanceresearch/mentor/internal/domain"
	"github.com/resonanceresearch/mentor/internal/llm"
)

// ErrExportFailed indicates the remote synthesis call failed. It is surfaced
// to the user and never retried automatically; the user re-triggers manually.
var ErrExportFailed = errors.New("plan export failed")

// Exporter makes the one-shot plan synthesis call.
type Exporter struct {
	client   llm.Client
	condense bool
}

// NewExporter creates an Exporter. The condensation pass is on by default;
// WithRawOutput disables it.
func NewExporter(client llm.Client) *Exporter {
	return &Exporter{client: client, condense: true}
}

// WithRawOutput returns an Exporter that skips the condensation pass.
func (e *Exporter) WithRawOutput() *Exporter {
	return &Exporter{client: e.client, condense: false}
}

// Export synthesizes a plan from all answers and the resource catalog. One
// blocking call; any failure maps to ErrExportFailed.
func (e *Exporter) Export(ctx context.Context, answers []*domain.Answer, resources []domain.Resource) (string, error) {
	resp, err := e.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlan,
		SystemPrompt: planSystemPrompt,
		UserPrompt:   buildPlanPrompt(answers, resources),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrExportFailed)
	}

	if e.condense {
		text = Condense(text)
	}
	return text, nil
}

const planSystemPrompt = `You are a faculty research mentor. From the interview answers, write a concrete
12-month research action plan for this researcher.
Rules:
- Plain text, short sections with bullet points.
- Every bullet must be a specific action, not advice about advice.
- Reference the listed funding programs and facilities where they fit.
- No preamble and no closing remarks.`

func buildPlanPrompt(answers []*domain.Answer, resources []domain.Resource) string {
	var b strings.Builder

	b.WriteString("Interview answers:\n")
	if len(answers) == 0 {
		b.WriteString("(none)\n")
	}
	for _, a := range answers {
		if strings.TrimSpace(a.Text) == "" {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", a.QuestionID, a.Text)
	}

	b.WriteString("\nAvailable resources:\n")
	if len(resources) == 0 {
		b.WriteString("(none)\n")
	}
	for _, r := range resources {
		fmt.Fprintf(&b, "- %s (%s)", r.Title, strings.Join(r.Tags, ", "))
		if r.Notes != "" {
			fmt.Fprintf(&b, ": %s", r.Notes)
		}
		b.WriteString("\n")
	}

	return b.String()
}
