package openalex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIdentity(t *testing.T) {
	cases := []struct {
		in   string
		want Identity
		ok   bool
	}{
		{"Ada Lovelace — Analytical University", Identity{"Ada Lovelace", "Analytical University"}, true},
		{"Ada Lovelace - Analytical University", Identity{"Ada Lovelace", "Analytical University"}, true},
		{"Ada Lovelace", Identity{Name: "Ada Lovelace"}, true},
		{"  Ada Lovelace  ", Identity{Name: "Ada Lovelace"}, true},
		// Hyphenated names are not separators.
		{"Jean-Luc Picard — Starfleet Academy", Identity{"Jean-Luc Picard", "Starfleet Academy"}, true},
		{"", Identity{}, false},
		{"   ", Identity{}, false},
	}

	for _, tc := range cases {
		got, ok := ParseIdentity(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
