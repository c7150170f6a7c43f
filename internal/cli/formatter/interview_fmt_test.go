package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/resonanceresearch/mentor/internal/domain"
	"github.com/resonanceresearch/mentor/internal/interview"
)

func TestFormatChecklist(t *testing.T) {
	items := []interview.ChecklistItem{
		{ID: "researcher_identity", Text: "Identity", Done: true},
		{ID: "interests", Text: "Research interests", Done: false},
	}

	got := FormatChecklist(items)
	assert.Contains(t, got, "☑")
	assert.Contains(t, got, "☐")
	assert.Contains(t, got, "Identity")
	assert.Contains(t, got, "Research interests")
}

func TestFormatSessionStatus(t *testing.T) {
	got := FormatSessionStatus(SessionStatus{
		SessionID:  "default",
		Progress:   40,
		Questions:  10,
		Answered:   4,
		LLMEnabled: true,
		LLMOnline:  true,
		Model:      "gpt-4o-mini",
	})

	assert.Contains(t, got, "default")
	assert.Contains(t, got, "in progress")
	assert.Contains(t, got, "4 of 10 questions")
	assert.Contains(t, got, "online")
	assert.Contains(t, got, "gpt-4o-mini")
	assert.Contains(t, got, "not generated")
	assert.Contains(t, got, "╭")
}

func TestFormatSessionStatus_FinishedWithPlan(t *testing.T) {
	got := FormatSessionStatus(SessionStatus{
		SessionID: "default",
		Progress:  100,
		Questions: 10,
		Answered:  10,
		Finished:  true,
		HasPlan:   true,
	})

	assert.Contains(t, got, "finished")
	assert.Contains(t, got, "ready")
	assert.Contains(t, got, "keyword chips only")
}

func TestFormatSubmissions(t *testing.T) {
	assert.Contains(t, FormatSubmissions(nil), "No submissions yet")

	got := FormatSubmissions([]*domain.Submission{
		{Key: "2026-02-14T09-30-00_ada", UserID: "ada", CreatedAt: time.Now()},
	})
	assert.Contains(t, got, "KEY")
	assert.Contains(t, got, "2026-02-14T09-30-00_ada")
	assert.Contains(t, got, "ada")
}

func TestFormatResources(t *testing.T) {
	assert.Contains(t, FormatResources(nil), "No matching resources")

	got := FormatResources([]domain.Resource{
		{
			Title: "NSF CAREER Program",
			URL:   "https://www.nsf.gov/funding",
			Tags:  []string{"funding"},
			Notes: "Five-year awards.",
		},
	})
	assert.Contains(t, got, "NSF CAREER Program")
	assert.Contains(t, got, "[funding]")
	assert.Contains(t, got, "https://www.nsf.gov/funding")
	assert.Contains(t, got, "Five-year awards.")
}

func TestFormatPlan(t *testing.T) {
	got := FormatPlan("• Pilot study in month one.\n")
	assert.Contains(t, got, "RESEARCH PLAN")
	assert.Contains(t, got, "Pilot study in month one.")
}

func TestFormatChips(t *testing.T) {
	assert.Empty(t, FormatChips(nil))

	got := FormatChips([]string{"Long-read sequencing", "Variant calling"})
	assert.Contains(t, got, "[Long-read sequencing]")
	assert.Contains(t, got, "[Variant calling]")
}
