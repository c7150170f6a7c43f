// Package catalog loads the static question and resource catalogs.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/resonanceresearch/mentor/internal/domain"
)

// FallbackQuestion is used when the question catalog cannot be loaded, so the
// interview stays usable with at least one prompt.
var FallbackQuestion = domain.Question{
	ID:       "fallback",
	Text:     "Describe your research background and interests.",
	Required: true,
	Weight:   10,
	Kind:     domain.QuestionCatalog,
}

// LoadQuestions reads the question catalog from a YAML file. On any read or
// parse failure it returns the single built-in fallback question and the
// error for logging; callers proceed either way.
func LoadQuestions(path string) ([]domain.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return []domain.Question{FallbackQuestion}, fmt.Errorf("reading question catalog %s: %w", path, err)
	}

	var questions []domain.Question
	if err := yaml.Unmarshal(data, &questions); err != nil {
		return []domain.Question{FallbackQuestion}, fmt.Errorf("parsing question catalog: %w", err)
	}

	if err := validateQuestions(questions); err != nil {
		return []domain.Question{FallbackQuestion}, fmt.Errorf("validating question catalog: %w", err)
	}

	for i := range questions {
		questions[i].Kind = domain.QuestionCatalog
	}
	return questions, nil
}

// LoadResources reads the resource catalog from a YAML file. Load failure
// degrades to an empty list.
func LoadResources(path string) ([]domain.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading resource catalog %s: %w", path, err)
	}

	var resources []domain.Resource
	if err := yaml.Unmarshal(data, &resources); err != nil {
		return nil, fmt.Errorf("parsing resource catalog: %w", err)
	}
	return resources, nil
}

func validateQuestions(questions []domain.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("catalog contains no questions")
	}

	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			return fmt.Errorf("question %d is missing an id", i)
		}
		if q.Text == "" {
			return fmt.Errorf("question %q is missing text", q.ID)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
	}
	return nil
}
