package plan

import (
	"regexp"
	"strings"
)

// skipHeading matches the meta-commentary headings models like to append
// (follow-ups, next steps, further reading), which the condensed plan drops.
var skipHeading = regexp.MustCompile(`(?i)^(follow-?up|next steps?|consider|further (work|reading)|questions?:)`)

// bulletPrefix matches list-style lines.
var bulletPrefix = regexp.MustCompile(`^[-*•]\s*(.+)$`)

// Condense tightens a generated plan: blank lines and meta-commentary
// headings are dropped, and list-style lines keep only their first sentence.
func Condense(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r", "")

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		if skipHeading.MatchString(s) {
			continue
		}
		kept = append(kept, s)
	}

	out := make([]string, len(kept))
	for i, line := range kept {
		if m := bulletPrefix.FindStringSubmatch(line); m != nil {
			out[i] = "• " + firstSentence(m[1])
		} else {
			out[i] = firstSentence(line)
		}
	}
	return strings.Join(out, "\n")
}

// firstSentence cuts the text after the first '.', '!' or '?' that is
// followed by whitespace.
func firstSentence(s string) string {
	for i := 0; i < len(s)-1; i++ {
		switch s[i] {
		case '.', '!', '?':
			if s[i+1] == ' ' || s[i+1] == '\t' {
				return s[:i+1]
			}
		}
	}
	return s
}
