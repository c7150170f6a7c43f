package plan

import (
	"strings"

	"github.com/resonanceresearch/mentor/internal/domain"
)

// previewSections fixes the order and labels of the deterministic outline
// shown before any plan has been generated.
var previewSections = []struct {
	id    string
	label string
}{
	{"researcher_identity", "Identity"},
	{"role_time", "Appointment & time"},
	{"expertise", "Expertise/assets"},
	{"interests", "Near-term interests"},
	{"constraints", "Constraints"},
	{"populations", "Accessible systems/cohorts"},
	{"collab_env", "Potential collaborators/facilities"},
	{"facilities", "Facilities"},
	{"funding_targets", "Funding targets"},
	{"outcomes", "12-month outcomes"},
}

// PreviewPlaceholder is shown when no answers have been recorded yet.
const PreviewPlaceholder = "Your personalized plan will assemble as you go, and can be generated on demand."

// Preview assembles a labeled outline from the known answer sections. It is
// the stand-in for the generated plan while none exists.
func Preview(answers []*domain.Answer) string {
	byID := make(map[string]string, len(answers))
	for _, a := range answers {
		byID[a.QuestionID] = strings.TrimSpace(a.Text)
	}

	var lines []string
	for _, sec := range previewSections {
		if v := byID[sec.id]; v != "" {
			lines = append(lines, sec.label+": "+v)
		}
	}
	if len(lines) == 0 {
		return PreviewPlaceholder
	}
	return strings.Join(lines, "\n")
}
