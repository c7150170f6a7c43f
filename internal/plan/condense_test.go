package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCondense_DropsBlankAndMetaLines(t *testing.T) {
	in := "Month 1: pilot study.\n\nNext steps\n- Write the protocol. Then circulate it widely.\nFollow-up questions to consider\nMonth 2: analysis."

	got := Condense(in)

	assert.Equal(t,
		"Month 1: pilot study.\n• Write the protocol.\nMonth 2: analysis.",
		got)
}

func TestCondense_BulletsKeepFirstSentence(t *testing.T) {
	assert.Equal(t, "• Submit the R21.", Condense("- Submit the R21. This is the most urgent task because the deadline is close."))
	assert.Equal(t, "• Recruit a postdoc", Condense("* Recruit a postdoc"))
	assert.Equal(t, "• Book core time!", Condense("• Book core time! Slots fill up fast."))
}

func TestCondense_HeadingVariants(t *testing.T) {
	for _, h := range []string{
		"Follow-up",
		"followup items",
		"Next Steps",
		"next step",
		"Consider reaching out to the dean",
		"Further reading",
		"Further work",
		"Questions: what about equipment?",
	} {
		assert.Empty(t, Condense(h), "heading %q should be dropped", h)
	}
}

func TestCondense_KeepsDecimalNumbers(t *testing.T) {
	// A period not followed by whitespace does not end a sentence.
	assert.Equal(t, "Allocate 1.5 FTE to the pilot", Condense("Allocate 1.5 FTE to the pilot"))
}

func TestCondense_Empty(t *testing.T) {
	assert.Empty(t, Condense(""))
	assert.Empty(t, Condense("\n\n\n"))
}
