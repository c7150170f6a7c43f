package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Key bindings are dispatched through per-mode tables of named actions so
// bindings live in one place and tests can invoke actions directly.
var (
	answerKeyActions = map[string]string{
		"enter":  "submit",
		"tab":    "chips",
		"ctrl+s": "skip",
		"ctrl+b": "back",
		"ctrl+f": "finish",
		"ctrl+r": "restart",
	}
	planKeyActions = map[string]string{
		"g":      "plan",
		"u":      "session",
		"b":      "questions",
		"r":      "restart",
		"ctrl+r": "restart",
	}
)

var interviewActions = map[string]func(*interviewModel) (tea.Model, tea.Cmd){
	"submit":    (*interviewModel).actionSubmit,
	"chips":     (*interviewModel).actionChips,
	"skip":      (*interviewModel).actionSkip,
	"back":      (*interviewModel).actionBack,
	"finish":    (*interviewModel).actionFinish,
	"restart":   (*interviewModel).actionRestart,
	"plan":      (*interviewModel).actionPlan,
	"session":   (*interviewModel).actionSession,
	"questions": (*interviewModel).actionQuestions,
}

// dispatchAction runs a named action if it exists.
func (m *interviewModel) dispatchAction(name string) (tea.Model, tea.Cmd) {
	if handler, ok := interviewActions[name]; ok {
		return handler(m)
	}
	return m, nil
}

func (m *interviewModel) actionSubmit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	text := m.input.Value()
	if m.view.question.Required && strings.TrimSpace(text) == "" {
		m.errText = "This question needs an answer before moving on."
		return m, nil
	}
	m.clearStatus()
	return m, m.submitCmd(text)
}

func (m *interviewModel) actionChips() (tea.Model, tea.Cmd) {
	if len(m.chips) == 0 {
		return m, nil
	}
	m.mode = modeChips
	m.chipIdx = 0
	m.input.Blur()
	return m, nil
}

func (m *interviewModel) actionSkip() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.clearStatus()
	return m, m.skipCmd()
}

func (m *interviewModel) actionBack() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.clearStatus()
	m.app.Interview.Back(contextTODO())
	m.refresh()
	m.input.SetValue(m.currentAnswerText())
	m.input.CursorEnd()
	m.mode = modeAnswer
	m.input.Focus()
	return m, m.loadChipsCmd()
}

func (m *interviewModel) actionFinish() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.clearStatus()
	m.app.Interview.Finish(contextTODO())
	m.refresh()
	m.enterPlanMode()
	return m, nil
}

func (m *interviewModel) actionRestart() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.resetYes = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Restart the interview?").
				Description("All answers in this session will be deleted.").
				Affirmative("Restart").
				Negative("Keep going").
				Value(&m.resetYes),
		),
	).WithTheme(mentorHuhTheme()).WithShowHelp(false)
	m.mode = modeConfirm
	m.input.Blur()
	return m, m.form.Init()
}

func (m *interviewModel) actionPlan() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.clearStatus()
	return m, m.generatePlanCmd()
}

func (m *interviewModel) actionSession() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.clearStatus()
	sub, err := m.app.Interview.SubmitSession(contextTODO())
	if err != nil {
		m.errText = "Could not archive the session: " + err.Error()
		return m, nil
	}
	m.notice = "Session archived as " + sub.Key
	return m, nil
}

func (m *interviewModel) actionQuestions() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.clearStatus()
	m.mode = modeAnswer
	m.input.SetValue(m.currentAnswerText())
	m.input.CursorEnd()
	m.input.Focus()
	return m, m.loadChipsCmd()
}

func (m *interviewModel) clearStatus() {
	m.notice = ""
	m.errText = ""
}
