package domain

import "strings"

// Resource is one entry of the static resource catalog shown beside the
// interview (funding programs, core facilities, reading lists).
type Resource struct {
	Title string   `json:"title" yaml:"title"`
	URL   string   `json:"url" yaml:"url"`
	Tags  []string `json:"tags" yaml:"tags"`
	Notes string   `json:"notes" yaml:"notes"`
}

// Matches reports whether the resource contains the query as a
// case-insensitive substring of any field. An empty query matches everything.
func (r Resource) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.URL), q) ||
		strings.Contains(strings.ToLower(r.Notes), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
