package openalex

import (
	"regexp"
	"strings"
)

// Identity is a researcher's name and optional affiliation, parsed from the
// identity answer of the interview.
type Identity struct {
	Name        string
	Affiliation string
}

// identitySep matches an em dash or hyphen with whitespace margins, the
// separator convention for "Full Name — Affiliation" answers.
var identitySep = regexp.MustCompile(`\s+[—-]\s+`)

// ParseIdentity parses an identity answer. Returns false when no name can be
// extracted.
func ParseIdentity(answer string) (Identity, bool) {
	raw := strings.TrimSpace(answer)
	if raw == "" {
		return Identity{}, false
	}
	parts := identitySep.Split(raw, 2)
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return Identity{}, false
	}
	id := Identity{Name: name}
	if len(parts) > 1 {
		id.Affiliation = strings.TrimSpace(parts[1])
	}
	return id, true
}

// IdentityQuestionID is the catalog question whose answer carries the
// researcher identity.
const IdentityQuestionID = "researcher_identity"
