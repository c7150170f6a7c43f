package formatter

import (
	"fmt"
	"strings"

	"github.com/resonanceresearch/mentor/internal/domain"
	"github.com/resonanceresearch/mentor/internal/interview"
)

// FormatChecklist renders the per-question checklist with check marks.
func FormatChecklist(items []interview.ChecklistItem) string {
	var b strings.Builder
	for _, item := range items {
		mark := StyleDim.Render("☐")
		text := StyleFg.Render(item.Text)
		if item.Done {
			mark = StyleGreen.Render("☑")
			text = StyleDim.Render(item.Text)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", mark, text))
	}
	return b.String()
}

// SessionStatus is the data FormatSessionStatus renders.
type SessionStatus struct {
	SessionID  string
	Progress   int
	Questions  int
	Answered   int
	Finished   bool
	HasPlan    bool
	LLMEnabled bool
	LLMOnline  bool
	Model      string
}

// FormatSessionStatus renders a session overview box.
func FormatSessionStatus(s SessionStatus) string {
	var b strings.Builder

	state := StyleYellow.Render("in progress")
	if s.Finished {
		state = StyleGreen.Render("finished")
	}

	llm := StyleDim.Render("disabled (keyword chips only)")
	if s.LLMEnabled {
		if s.LLMOnline {
			llm = StyleGreen.Render("online") + StyleDim.Render(" · "+s.Model)
		} else {
			llm = StyleRed.Render("unreachable") + StyleDim.Render(" · "+s.Model)
		}
	}

	plan := StyleDim.Render("not generated")
	if s.HasPlan {
		plan = StyleGreen.Render("ready")
	}

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleBold.Render("Session"), StyleDim.Render(s.SessionID)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleBold.Render("State"), state))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleBold.Render("Answered"), StyleFg.Render(fmt.Sprintf("%d of %d questions", s.Answered, s.Questions))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleBold.Render("Progress"), RenderProgress(s.Progress, 20)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleBold.Render("Model"), llm))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleBold.Render("Plan"), plan))

	return RenderBox("status", strings.TrimRight(b.String(), "\n"))
}

// FormatSubmissions renders archived submissions as a table.
func FormatSubmissions(subs []*domain.Submission) string {
	if len(subs) == 0 {
		return Dim("No submissions yet.") + "\n"
	}
	headers := []string{"KEY", "USER", "SUBMITTED"}
	rows := make([][]string, 0, len(subs))
	for _, s := range subs {
		rows = append(rows, []string{
			Bold(s.Key),
			StyleFg.Render(s.UserID),
			StyleDim.Render(HumanTimestamp(s.CreatedAt)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatResources renders the resource catalog as a list with tags and notes.
func FormatResources(resources []domain.Resource) string {
	if len(resources) == 0 {
		return Dim("No matching resources.") + "\n"
	}
	var b strings.Builder
	for _, r := range resources {
		b.WriteString(StyleHeader.Render(r.Title))
		if len(r.Tags) > 0 {
			b.WriteString("  " + StylePurple.Render("["+strings.Join(r.Tags, ", ")+"]"))
		}
		b.WriteString("\n")
		if r.URL != "" {
			b.WriteString("  " + StyleBlue.Render(r.URL) + "\n")
		}
		if r.Notes != "" {
			b.WriteString("  " + StyleDim.Render(r.Notes) + "\n")
		}
	}
	return b.String()
}

// FormatPlan renders generated plan text inside a titled box.
func FormatPlan(text string) string {
	return RenderBox("research plan", StyleFg.Render(strings.TrimSpace(text)))
}

// FormatChips renders suggestion chips inline, e.g. for non-TUI output.
func FormatChips(chips []string) string {
	if len(chips) == 0 {
		return ""
	}
	parts := make([]string, 0, len(chips))
	for _, c := range chips {
		parts = append(parts, StyleBlue.Render("["+c+"]"))
	}
	return strings.Join(parts, " ")
}
