// Package suggest implements the chip suggestion pipeline: relevance
// filtering, a per-question cache, the remote suggestion client and
// background prefetch.
package suggest

import (
	"regexp"
	"strings"

	"github.com/resonanceresearch/mentor/internal/domain"
)

// MaxChips is the cap on filtered suggestions shown per question.
const MaxChips = 8

// genericImperative matches template-like entries such as "List lab methods".
var genericImperative = regexp.MustCompile(`(?i)^(list|describe|explain|discuss|outline|note)\b`)

// stoplist holds exact non-answers that are never useful as chips.
var stoplist = map[string]bool{
	"yes": true, "no": true, "n/a": true, "na": true, "maybe": true,
}

var nonWord = regexp.MustCompile(`\W+`)

// Filter prunes a raw suggestion list down to entries directly usable as
// answer fragments for the question. It is a pure projection: filtering an
// already-filtered list changes nothing.
func Filter(question domain.Question, raw []string) []string {
	qWords := wordSet(question.Text, 4)

	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, MaxChips)

	for _, c := range raw {
		if len(out) >= MaxChips {
			break
		}
		c = strings.TrimSpace(c)
		if len(c) < 5 {
			continue
		}
		if strings.HasSuffix(c, "?") {
			// Restated sub-questions, not answer fragments.
			continue
		}
		if genericImperative.MatchString(c) {
			continue
		}
		lower := strings.ToLower(c)
		if stoplist[lower] {
			continue
		}
		if !hasWordOfLength(lower, 4) {
			continue
		}
		// Relevance check is deliberately permissive: overlap with the
		// question words is preferred but never disqualifying, since the
		// structural filters above already trim the junk.
		_ = sharesWord(lower, qWords)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		out = append(out, c)
	}

	return out
}

// wordSet extracts the lowercase words of the text with at least minLen
// characters.
func wordSet(text string, minLen int) map[string]bool {
	words := map[string]bool{}
	for _, w := range nonWord.Split(strings.ToLower(text), -1) {
		if len(w) >= minLen {
			words[w] = true
		}
	}
	return words
}

func hasWordOfLength(text string, minLen int) bool {
	for _, w := range nonWord.Split(text, -1) {
		if len(w) >= minLen {
			return true
		}
	}
	return false
}

func sharesWord(text string, words map[string]bool) bool {
	if len(words) == 0 {
		return true
	}
	for _, w := range nonWord.Split(text, -1) {
		if len(w) >= 4 && words[w] {
			return true
		}
	}
	return false
}
