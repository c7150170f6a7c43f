package openalex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resonanceresearch/mentor/internal/repository"
	"github.com/resonanceresearch/mentor/internal/testutil"
)

func fakeOpenAlex(t *testing.T, requests *atomic.Int32, concepts [][]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			requests.Add(1)
		}
		switch r.URL.Path {
		case "/authors":
			json.NewEncoder(w).Encode(map[string]any{
				"results": []map[string]string{{"id": "https://openalex.org/A123"}},
			})
		case "/works":
			works := make([]map[string]any, 0, len(concepts))
			for _, cs := range concepts {
				xs := make([]map[string]string, 0, len(cs))
				for _, c := range cs {
					xs = append(xs, map[string]string{"display_name": c})
				}
				works = append(works, map[string]any{"x_concepts": xs})
			}
			json.NewEncoder(w).Encode(map[string]any{"results": works})
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestKeywordsFor_RanksByFrequency(t *testing.T) {
	srv := fakeOpenAlex(t, nil, [][]string{
		{"Genomics", "Bioinformatics"},
		{"genomics", "Machine learning"},
		{"Genomics", "Bioinformatics", "Machine learning"},
	})
	defer srv.Close()

	c := NewClient(nil, WithBaseURL(srv.URL))
	got := c.KeywordsFor(context.Background(), Identity{Name: "Ada Lovelace"})

	// Frequency order with first-seen casing and tie-break.
	assert.Equal(t, []string{"Genomics", "Bioinformatics", "Machine learning"}, got)
}

func TestKeywordsFor_EmptyNameSkipsNetwork(t *testing.T) {
	var requests atomic.Int32
	srv := fakeOpenAlex(t, &requests, nil)
	defer srv.Close()

	c := NewClient(nil, WithBaseURL(srv.URL))
	assert.Nil(t, c.KeywordsFor(context.Background(), Identity{}))
	assert.Zero(t, requests.Load())
}

func TestKeywordsFor_APIFailureDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(nil, WithBaseURL(srv.URL))
	assert.Empty(t, c.KeywordsFor(context.Background(), Identity{Name: "Ada Lovelace"}))
}

func TestKeywordsFor_CacheHitSkipsNetwork(t *testing.T) {
	var requests atomic.Int32
	srv := fakeOpenAlex(t, &requests, [][]string{{"Genomics"}})
	defer srv.Close()

	database := testutil.NewTestDB(t)
	cache := repository.NewSQLiteKeywordCacheRepo(database)
	c := NewClient(cache, WithBaseURL(srv.URL))
	id := Identity{Name: "Ada Lovelace", Affiliation: "Analytical University"}

	first := c.KeywordsFor(context.Background(), id)
	require.Equal(t, []string{"Genomics"}, first)
	after := requests.Load()

	second := c.KeywordsFor(context.Background(), id)
	assert.Equal(t, first, second)
	assert.Equal(t, after, requests.Load(), "second lookup is served from cache")
}

func TestKeywordsFor_ExpiredCacheRefetches(t *testing.T) {
	var requests atomic.Int32
	srv := fakeOpenAlex(t, &requests, [][]string{{"Genomics"}})
	defer srv.Close()

	database := testutil.NewTestDB(t)
	cache := repository.NewSQLiteKeywordCacheRepo(database)

	current := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewClient(cache, WithBaseURL(srv.URL), WithClock(func() time.Time { return current }))
	id := Identity{Name: "Ada Lovelace"}

	c.KeywordsFor(context.Background(), id)
	after := requests.Load()

	// Eight days later the 7-day entry has expired.
	current = current.Add(8 * 24 * time.Hour)
	c.KeywordsFor(context.Background(), id)
	assert.Greater(t, requests.Load(), after)
}

func TestKeywordsFor_CapsAtMaxKeywords(t *testing.T) {
	concepts := make([]string, 40)
	for i := range concepts {
		concepts[i] = "Concept " + string(rune('A'+i))
	}
	srv := fakeOpenAlex(t, nil, [][]string{concepts})
	defer srv.Close()

	c := NewClient(nil, WithBaseURL(srv.URL))
	got := c.KeywordsFor(context.Background(), Identity{Name: "Prolific Author"})
	assert.Len(t, got, maxKeywords)
}
