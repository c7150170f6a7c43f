package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/resonanceresearch/mentor/internal/cli/formatter"
	"github.com/resonanceresearch/mentor/internal/domain"
	"github.com/resonanceresearch/mentor/internal/interview"
)

// uiMode tracks which part of the TUI has focus.
type uiMode int

const (
	modeAnswer  uiMode = iota // typing into the answer box
	modeChips                 // navigating the suggestion chips
	modePlan                  // reviewing the finished plan
	modeConfirm               // reset confirmation form is active
)

// viewData is a snapshot of everything View renders. It is refreshed on the
// Update goroutine after each controller mutation, so View never touches the
// controller while a background command might be using it.
type viewData struct {
	question  domain.Question
	index     int
	total     int
	progress  int
	finished  bool
	planText  string
	checklist []interview.ChecklistItem
}

// interviewModel is the bubbletea Model for the interactive interview.
type interviewModel struct {
	app *App

	input textarea.Model
	plan  viewport.Model
	form  *huh.Form // reset confirmation (nil unless modeConfirm)

	view viewData
	mode uiMode

	chips        []string
	chipIdx      int
	chipsLoading bool

	// busy is set while a background command owns the controller
	// (answer submission may trigger a follow-up model call). All
	// controller access from Update is gated on it.
	busy bool

	notice   string
	errText  string
	resetYes bool
	width    int
	height   int
	quitting bool
}

// runInterview starts the interview TUI and blocks until it exits.
func runInterview(app *App) error {
	m := newInterviewModel(app)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	app.Chips.Wait()
	return err
}

func newInterviewModel(app *App) *interviewModel {
	ta := textarea.New()
	ta.Placeholder = "Type your answer, or Tab to pick a suggestion"
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetHeight(4)
	// Enter submits; ctrl+j inserts a line break inside the answer.
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("ctrl+j"))
	ta.Focus()

	m := &interviewModel{
		app:   app,
		input: ta,
		plan:  viewport.New(80, 20),
	}
	m.refresh()
	m.input.SetValue(m.currentAnswerText())
	if m.view.finished {
		m.enterPlanMode()
	}
	return m
}

// refresh re-reads view state from the controller. Must only be called on
// the Update goroutine while no background command owns the controller.
func (m *interviewModel) refresh() {
	q, idx := m.app.Interview.Current()
	m.view = viewData{
		question:  q,
		index:     idx,
		total:     len(m.app.Interview.Questions()),
		progress:  m.app.Interview.Progress(),
		finished:  m.app.Interview.Finished(),
		planText:  m.app.Interview.PlanText(),
		checklist: m.app.Interview.Checklist(),
	}
}

func (m *interviewModel) currentAnswerText() string {
	if a := m.app.Interview.CurrentAnswer(); a != nil {
		return a.Text
	}
	return ""
}

func (m *interviewModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.loadChipsCmd(), m.checkModelCmd())
}

func (m *interviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(min(msg.Width-4, 100))
		m.plan.Width = min(msg.Width-4, 100)
		m.plan.Height = max(msg.Height-10, 5)
		return m, nil

	case chipsMsg:
		// Results are tagged with the question they were fetched for.
		// By the time they arrive the user may have moved on; stale
		// results are dropped instead of flashing onto the wrong card.
		if msg.questionID == m.view.question.ID {
			m.chips = msg.chips
			m.chipsLoading = false
			if m.chipIdx >= len(m.chips) {
				m.chipIdx = 0
			}
		}
		return m, nil

	case advancedMsg:
		m.busy = false
		m.refresh()
		m.input.SetValue(m.currentAnswerText())
		m.input.CursorEnd()
		if m.view.finished {
			m.enterPlanMode()
			return m, nil
		}
		m.mode = modeAnswer
		return m, m.loadChipsCmd()

	case planMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = "Plan generation failed. Showing the draft preview instead."
			m.plan.SetContent(m.planContent())
			return m, nil
		}
		m.app.Interview.SetPlanText(contextTODO(), msg.text)
		m.refresh()
		m.notice = "Plan generated."
		m.plan.SetContent(m.planContent())
		return m, nil

	case modelStatusMsg:
		if m.app.LLMConfig.Enabled() && !msg.online {
			m.notice = "Model endpoint unreachable. Falling back to keyword suggestions."
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == modeConfirm && m.form != nil {
		return m.updateForm(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.mode == modeConfirm && m.form != nil {
		return m.updateForm(msg)
	}

	switch m.mode {
	case modeChips:
		return m.handleChipKey(msg)
	case modePlan:
		if action, ok := planKeyActions[msg.String()]; ok {
			return m.dispatchAction(action)
		}
		var cmd tea.Cmd
		m.plan, cmd = m.plan.Update(msg)
		return m, cmd
	default:
		if action, ok := answerKeyActions[msg.String()]; ok {
			return m.dispatchAction(action)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *interviewModel) handleChipKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.chipIdx > 0 {
			m.chipIdx--
		}
	case "right", "l":
		if m.chipIdx < len(m.chips)-1 {
			m.chipIdx++
		}
	case "enter", " ":
		return m.acceptSelectedChip()
	case "esc", "tab":
		m.mode = modeAnswer
		m.input.Focus()
	}
	return m, nil
}

func (m *interviewModel) acceptSelectedChip() (tea.Model, tea.Cmd) {
	if m.busy || len(m.chips) == 0 {
		return m, nil
	}
	chip := m.chips[m.chipIdx]
	m.app.Interview.AcceptChip(contextTODO(), chip)
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		m.input.SetValue(chip)
	} else {
		m.input.SetValue(strings.TrimRight(text, " ") + "; " + chip)
	}
	m.input.CursorEnd()
	m.mode = modeAnswer
	m.input.Focus()
	m.refresh()
	return m, nil
}

func (m *interviewModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		confirmed := m.resetYes
		m.form = nil
		if confirmed {
			m.app.Interview.Reset(contextTODO())
			m.refresh()
			m.input.SetValue("")
			m.chips = nil
			m.notice = "Session cleared."
			m.mode = modeAnswer
			m.input.Focus()
			return m, m.loadChipsCmd()
		}
		if m.view.finished {
			m.mode = modePlan
		} else {
			m.mode = modeAnswer
			m.input.Focus()
		}
		return m, nil
	}
	return m, cmd
}

func (m *interviewModel) enterPlanMode() {
	m.mode = modePlan
	m.input.Blur()
	m.plan.SetContent(m.planContent())
}

func (m *interviewModel) planContent() string {
	text := m.view.planText
	if text == "" {
		text = m.previewText()
	}
	var b strings.Builder
	b.WriteString(formatter.FormatChecklist(m.view.checklist))
	b.WriteString("\n")
	b.WriteString(formatter.StyleFg.Render(text))
	return b.String()
}

// ── view ─────────────────────────────────────────────────────────────────────

var (
	chipStyle = lipgloss.NewStyle().
			Foreground(formatter.ColorBlue).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(formatter.ColorDim).
			Padding(0, 1)
	chipSelectedStyle = lipgloss.NewStyle().
				Foreground(formatter.ColorFg).
				Background(formatter.ColorHeader).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(formatter.ColorHeader).
				Padding(0, 1)
	questionStyle = lipgloss.NewStyle().Foreground(formatter.ColorFg).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(formatter.ColorDim)
)

func (m *interviewModel) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeConfirm && m.form != nil {
		return "\n" + m.form.View()
	}

	var b strings.Builder

	header := fmt.Sprintf("%s  %s",
		formatter.StyleHeader.Render("MENTOR"),
		formatter.RenderProgress(m.view.progress, 20))
	b.WriteString(header + "\n\n")

	if m.mode == modePlan {
		b.WriteString(formatter.StyleHeader.Render("YOUR PLAN") + "\n\n")
		b.WriteString(m.plan.View() + "\n\n")
		if m.busy {
			b.WriteString(formatter.StyleYellow.Render("Generating plan…") + "\n")
		}
		b.WriteString(m.statusLine())
		b.WriteString(helpStyle.Render("g generate · u submit session · b back to questions · r restart · ctrl+c quit"))
		return b.String()
	}

	counter := formatter.Dim(fmt.Sprintf("Question %d of %d", m.view.index+1, m.view.total))
	if m.view.question.Kind == domain.QuestionCustom {
		counter += formatter.StylePurple.Render("  follow-up")
	}
	b.WriteString(counter + "\n")
	b.WriteString(questionStyle.Render(wrap(m.view.question.Text, m.contentWidth())) + "\n\n")

	b.WriteString(m.chipsView() + "\n")
	b.WriteString(m.input.View() + "\n")
	if m.busy {
		b.WriteString(formatter.StyleYellow.Render("Thinking…") + "\n")
	}
	b.WriteString(m.statusLine())
	b.WriteString(helpStyle.Render("enter answer · tab suggestions · ctrl+s skip · ctrl+b back · ctrl+f finish · ctrl+r restart"))
	return b.String()
}

func (m *interviewModel) chipsView() string {
	if m.chipsLoading {
		return helpStyle.Render("Fetching suggestions…") + "\n"
	}
	if len(m.chips) == 0 {
		return ""
	}
	pills := make([]string, 0, len(m.chips))
	for i, c := range m.chips {
		style := chipStyle
		if m.mode == modeChips && i == m.chipIdx {
			style = chipSelectedStyle
		}
		pills = append(pills, style.Render(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pills...) + "\n"
}

func (m *interviewModel) statusLine() string {
	line := ""
	if m.errText != "" {
		line = formatter.StyleRed.Render(m.errText)
	} else if m.notice != "" {
		line = formatter.StyleGreen.Render(m.notice)
	}
	if line == "" {
		return ""
	}
	return line + "\n"
}

func (m *interviewModel) contentWidth() int {
	if m.width == 0 {
		return 80
	}
	return min(m.width-4, 100)
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}
