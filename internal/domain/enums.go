package domain

type QuestionKind string

const (
	QuestionCatalog QuestionKind = "catalog"
	QuestionCustom  QuestionKind = "custom"
)

type ChipSource string

const (
	// ChipsFromModel marks suggestions produced by the language model.
	ChipsFromModel ChipSource = "model"
	// ChipsFromKeywords marks suggestions derived from bibliographic keywords
	// when the model is unavailable.
	ChipsFromKeywords ChipSource = "keywords"
)

// ProgressBase selects which question set the progress percentage is computed
// over. Drafts of the original widget disagreed on this; it is a configuration
// choice and is never mixed mid-session.
type ProgressBase string

const (
	// ProgressCatalogOnly weights progress over the original catalog set.
	ProgressCatalogOnly ProgressBase = "catalog"
	// ProgressAllQuestions also counts adaptive questions.
	ProgressAllQuestions ProgressBase = "all"
)
