package domain

// Question is a single interview prompt. Catalog questions are immutable once
// loaded; adaptive questions are appended to the live sequence at runtime.
type Question struct {
	ID       string       `json:"id" yaml:"id"`
	Text     string       `json:"text" yaml:"text"`
	Required bool         `json:"required" yaml:"required"`
	Weight   int          `json:"weight" yaml:"weight"`
	NoChips  bool         `json:"no_chips,omitempty" yaml:"no_chips"`
	Kind     QuestionKind `json:"kind,omitempty" yaml:"-"`
}

// EffectiveWeight returns the progress weight, floored at 1 so that
// unweighted catalog entries still count.
func (q Question) EffectiveWeight() int {
	if q.Weight < 1 {
		return 1
	}
	return q.Weight
}

// IsAdaptive reports whether the question was generated mid-session rather
// than loaded from the catalog.
func (q Question) IsAdaptive() bool {
	return q.Kind == QuestionCustom
}
