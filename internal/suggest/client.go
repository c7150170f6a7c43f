package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/resonanceresearch/mentor/internal/domain"
	"github.com/resonanceresearch/mentor/internal/llm"
	"github.com/resonanceresearch/mentor/internal/openalex"
)

// contextWindow bounds how many recent answers travel with each request.
const contextWindow = 5

// rawChipCap bounds the raw list accepted from the model before filtering.
const rawChipCap = 12

// KeywordSource resolves a researcher identity to ranked topic keywords.
// Implemented by the OpenAlex client.
type KeywordSource interface {
	KeywordsFor(ctx context.Context, id openalex.Identity) []string
}

// Service fetches chip suggestions from the language model. It never returns
// an error: a disabled client, network failure, non-success status or
// malformed body all resolve to an empty list so the interview is never
// blocked by the enhancement path.
type Service struct {
	client   llm.Client
	keywords KeywordSource
}

// NewService creates a suggestion Service. keywords may be nil to disable
// bibliographic enrichment.
func NewService(client llm.Client, keywords KeywordSource) *Service {
	return &Service{client: client, keywords: keywords}
}

type chipsResponse struct {
	Chips []string `json:"chips"`
}

// Fetch returns filtered chip suggestions for the question. The request
// carries the question text and the last few answers; when an identity
// answer is present, bibliographic keywords bias the prompt and serve as the
// fallback when the model is unavailable.
func (s *Service) Fetch(ctx context.Context, q domain.Question, answers []*domain.Answer) ([]string, domain.ChipSource) {
	keywords := s.identityKeywords(ctx, answers)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSuggest,
		SystemPrompt: suggestSystemPrompt,
		UserPrompt:   buildSuggestPrompt(q, recentAnswers(answers), keywords),
		JSONObject:   true,
	})
	if err != nil {
		return Filter(q, keywordFallback(keywords)), domain.ChipsFromKeywords
	}

	parsed, err := llm.ExtractJSON[chipsResponse](resp.Text, nil)
	if err != nil {
		// Malformed output is coerced to the keyword fallback, never surfaced.
		return Filter(q, keywordFallback(keywords)), domain.ChipsFromKeywords
	}

	raw := parsed.Chips
	if len(raw) > rawChipCap {
		raw = raw[:rawChipCap]
	}
	return Filter(q, raw), domain.ChipsFromModel
}

func (s *Service) identityKeywords(ctx context.Context, answers []*domain.Answer) []string {
	if s.keywords == nil {
		return nil
	}
	for _, a := range answers {
		if a.QuestionID != openalex.IdentityQuestionID {
			continue
		}
		if id, ok := openalex.ParseIdentity(a.Text); ok {
			return s.keywords.KeywordsFor(ctx, id)
		}
	}
	return nil
}

// recentAnswers returns the last contextWindow answers, oldest first.
func recentAnswers(answers []*domain.Answer) []*domain.Answer {
	if len(answers) <= contextWindow {
		return answers
	}
	return answers[len(answers)-contextWindow:]
}

// keywordFallback turns ranked keywords into chip candidates: the top seven,
// title-cased.
func keywordFallback(keywords []string) []string {
	if len(keywords) > 7 {
		keywords = keywords[:7]
	}
	out := make([]string, len(keywords))
	for i, k := range keywords {
		out[i] = titleCase(k)
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

const suggestSystemPrompt = `You generate short, concrete suggestion "chips" to help users answer a form.
Rules:
- 3 to 7 chips max.
- Each chip must be succinct (2-6 words), not a full sentence.
- Chips must be specific to the CURRENT question and informed by the context when helpful.
- Use researcher-specific keywords if provided to bias suggestions toward the user's domain.
- If nothing useful can be inferred, return an empty list.
Return JSON strictly of the form: {"chips": ["..."]}`

func buildSuggestPrompt(q domain.Question, recent []*domain.Answer, keywords []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Current question: %q\n\n", q.Text)

	b.WriteString("Context (previous Q&A):\n")
	if len(recent) == 0 {
		b.WriteString("(none)\n")
	}
	for _, a := range recent {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", a.QuestionID, a.Text)
		if len(a.ChipsAccepted) > 0 {
			fmt.Fprintf(&b, "Accepted chips: %s\n", strings.Join(a.ChipsAccepted, ", "))
		}
		b.WriteString("---\n")
	}

	b.WriteString("\nResearcher keywords:\n")
	if len(keywords) > 0 {
		b.WriteString(strings.Join(keywords, ", "))
	} else {
		b.WriteString("(none)")
	}

	return b.String()
}
