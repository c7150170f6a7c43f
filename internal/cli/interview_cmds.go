package cli

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/resonanceresearch/mentor/internal/plan"
	"github.com/resonanceresearch/mentor/internal/suggest"
)

// chipsMsg carries fetched suggestion chips, tagged with the question they
// were requested for so stale arrivals can be dropped.
type chipsMsg struct {
	questionID string
	chips      []string
}

// advancedMsg signals that a background answer submission finished and the
// controller moved to the next question.
type advancedMsg struct{}

// planMsg carries the result of background plan generation.
type planMsg struct {
	text string
	err  error
}

// modelStatusMsg reports whether the model endpoint answered a probe.
type modelStatusMsg struct {
	online bool
}

func contextTODO() context.Context {
	return context.Background()
}

// loadChipsCmd shows cached chips immediately and fetches otherwise. It also
// warms the cache for the next questions. All controller reads happen here,
// on the Update goroutine; the returned command only touches the pipeline
// with the snapshots captured now.
func (m *interviewModel) loadChipsCmd() tea.Cmd {
	q, idx := m.app.Interview.Current()
	questions := m.app.Interview.Questions()
	answers := m.app.Interview.ContextAnswers()

	m.app.Chips.PrefetchAhead(context.Background(), questions, answers, idx, suggest.DefaultPrefetch)

	m.chips = nil
	m.chipIdx = 0
	m.chipsLoading = false

	if !suggest.ShouldFetch(q, idx) {
		return nil
	}
	if cached, ok := m.app.Chips.Cache().Get(q.ID); ok {
		m.chips = cached
		return nil
	}

	m.chipsLoading = true
	pipeline := m.app.Chips
	return func() tea.Msg {
		chips := pipeline.ChipsFor(context.Background(), q, idx, answers)
		return chipsMsg{questionID: q.ID, chips: chips}
	}
}

// submitCmd hands the controller to a background command for the duration of
// one submission. Reaching the end of the catalog may trigger a follow-up
// model call, which must not block the UI loop.
func (m *interviewModel) submitCmd(text string) tea.Cmd {
	m.busy = true
	ctrl := m.app.Interview
	return func() tea.Msg {
		ctrl.SubmitAnswer(context.Background(), text)
		return advancedMsg{}
	}
}

func (m *interviewModel) skipCmd() tea.Cmd {
	m.busy = true
	ctrl := m.app.Interview
	return func() tea.Msg {
		ctrl.Skip(context.Background())
		return advancedMsg{}
	}
}

// generatePlanCmd runs plan synthesis in the background. The answers and
// resources are snapshotted before the command starts.
func (m *interviewModel) generatePlanCmd() tea.Cmd {
	m.busy = true
	answers := m.app.Interview.ContextAnswers()
	resources := m.app.Resources
	exporter := m.app.Planner
	return func() tea.Msg {
		if exporter == nil {
			return planMsg{err: plan.ErrExportFailed}
		}
		text, err := exporter.Export(context.Background(), answers, resources)
		if err != nil && !errors.Is(err, plan.ErrExportFailed) {
			err = plan.ErrExportFailed
		}
		return planMsg{text: text, err: err}
	}
}

// previewText assembles the deterministic plan preview from current answers.
func (m *interviewModel) previewText() string {
	return plan.Preview(m.app.Interview.ContextAnswers())
}

// checkModelCmd probes the model endpoint once at startup.
func (m *interviewModel) checkModelCmd() tea.Cmd {
	if !m.app.LLMConfig.Enabled() {
		return nil
	}
	client := m.app.LLM
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return modelStatusMsg{online: client.Available(ctx)}
	}
}
