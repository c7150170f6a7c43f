// Package openalex resolves a researcher identity to a ranked list of topic
// keywords using the OpenAlex bibliographic API. Lookups are best effort:
// every failure degrades to an empty list, and results are cached with a TTL
// so repeated sessions skip the network.
package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/resonanceresearch/mentor/internal/repository"
)

const (
	defaultBaseURL = "https://api.openalex.org"
	cacheTTL       = 7 * 24 * time.Hour
	maxKeywords    = 24
)

// Client queries OpenAlex for author keywords.
type Client struct {
	baseURL string
	http    *http.Client
	cache   repository.KeywordCacheRepo
	now     func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithClock overrides the time source, used in tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a Client. cache may be nil, in which case every lookup
// goes to the network.
func NewClient(cache repository.KeywordCacheRepo, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 6 * time.Second},
		cache:   cache,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// KeywordsFor returns ranked topic keywords for the identity, most frequent
// first. It never returns an error: cache misses fall through to the API and
// API failures yield an empty list.
func (c *Client) KeywordsFor(ctx context.Context, id Identity) []string {
	if id.Name == "" {
		return nil
	}

	cacheKey := fmt.Sprintf("openalex:keywords:%s|%s", id.Name, id.Affiliation)
	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cacheKey, c.now()); err == nil {
			return cached
		}
	}

	authorID := c.findAuthor(ctx, id)
	if authorID == "" {
		return nil
	}

	ranked := tally(c.collectConcepts(ctx, authorID))
	if len(ranked) > maxKeywords {
		ranked = ranked[:maxKeywords]
	}

	if c.cache != nil && len(ranked) > 0 {
		// Cache write failure only costs a future lookup.
		_ = c.cache.Put(ctx, cacheKey, ranked, c.now().Add(cacheTTL))
	}
	return ranked
}

type authorsResponse struct {
	Results []struct {
		ID string `json:"id"`
	} `json:"results"`
}

type worksResponse struct {
	Results []struct {
		XConcepts []struct {
			DisplayName string `json:"display_name"`
		} `json:"x_concepts"`
	} `json:"results"`
}

func (c *Client) findAuthor(ctx context.Context, id Identity) string {
	params := url.Values{}
	params.Set("search", id.Name)
	params.Set("per_page", "5")
	if id.Affiliation != "" {
		params.Set("filter", "last_known_institution.display_name.search:"+id.Affiliation)
	}

	var resp authorsResponse
	if err := c.getJSON(ctx, "/authors?"+params.Encode(), &resp); err != nil {
		return ""
	}
	if len(resp.Results) == 0 {
		return ""
	}
	return resp.Results[0].ID
}

func (c *Client) collectConcepts(ctx context.Context, authorID string) []string {
	params := url.Values{}
	params.Set("filter", "authorships.author.id:"+authorID)
	params.Set("per_page", "25")
	params.Set("sort", "cited_by_count:desc")

	var resp worksResponse
	if err := c.getJSON(ctx, "/works?"+params.Encode(), &resp); err != nil {
		return nil
	}

	var concepts []string
	for _, w := range resp.Results {
		for _, x := range w.XConcepts {
			if x.DisplayName != "" {
				concepts = append(concepts, x.DisplayName)
			}
		}
	}
	return concepts
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("openalex returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	return json.Unmarshal(body, out)
}

// tally ranks values by frequency (descending), case-insensitively, keeping
// the first-seen casing and breaking ties by first appearance.
func tally(values []string) []string {
	counts := map[string]int{}
	firstSeen := map[string]int{}
	display := map[string]string{}

	for i, v := range values {
		k := strings.ToLower(v)
		if k == "" {
			continue
		}
		if _, ok := counts[k]; !ok {
			firstSeen[k] = i
			display[k] = v
		}
		counts[k]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if counts[keys[a]] != counts[keys[b]] {
			return counts[keys[a]] > counts[keys[b]]
		}
		return firstSeen[keys[a]] < firstSeen[keys[b]]
	})

	ranked := make([]string, len(keys))
	for i, k := range keys {
		ranked[i] = display[k]
	}
	return ranked
}
