package suggest

import (
	"context"
	"sync"

	"github.com/resonanceresearch/mentor/internal/domain"
)

// DefaultPrefetch is how many upcoming questions are warmed after each render.
const DefaultPrefetch = 2

// Fetcher is the remote suggestion call used by the pipeline.
type Fetcher interface {
	Fetch(ctx context.Context, q domain.Question, answers []*domain.Answer) ([]string, domain.ChipSource)
}

// Pipeline combines the cache and the remote client: the foreground path
// serves cached chips instantly and fetches otherwise; the prefetch path
// warms the cache for upcoming questions in the background.
type Pipeline struct {
	cache   *Cache
	fetcher Fetcher
	wg      sync.WaitGroup
}

// NewPipeline creates a Pipeline over the given cache and fetcher.
func NewPipeline(cache *Cache, fetcher Fetcher) *Pipeline {
	return &Pipeline{cache: cache, fetcher: fetcher}
}

// Cache exposes the underlying chip cache.
func (p *Pipeline) Cache() *Cache {
	return p.cache
}

// ChipsFor returns the chips for the question at the given position,
// consulting the cache first. The fetched result is cached, empty or not, so
// the entry becomes authoritative for the session.
func (p *Pipeline) ChipsFor(ctx context.Context, q domain.Question, position int, answers []*domain.Answer) []string {
	if cached, ok := p.cache.Get(q.ID); ok {
		return cached
	}
	if !ShouldFetch(q, position) {
		return nil
	}
	chips, _ := p.fetcher.Fetch(ctx, q, answers)
	p.cache.Put(q.ID, chips)
	return chips
}

// PrefetchAhead warms the cache for the count questions after fromIndex,
// bounded by the sequence length. answers must be a stable snapshot (the
// controller's ContextAnswers provides one), since the goroutines read it
// after this call returns. Each fetch runs in its own goroutine;
// failures are swallowed (the client already degrades to an empty list) and
// completions have no ordering guarantee. Re-invoking with an overlapping
// range is cheap because cached ids are skipped, though two in-flight
// fetches for the same id can race; the last write wins.
func (p *Pipeline) PrefetchAhead(ctx context.Context, questions []domain.Question, answers []*domain.Answer, fromIndex, count int) {
	start := fromIndex + 1
	if start < 0 {
		start = 0
	}
	end := start + count
	if end > len(questions) {
		end = len(questions)
	}

	for i := start; i < end; i++ {
		q := questions[i]
		if !ShouldFetch(q, i) {
			continue
		}
		if p.cache.Has(q.ID) {
			continue
		}
		p.wg.Add(1)
		go func(q domain.Question) {
			defer p.wg.Done()
			chips, _ := p.fetcher.Fetch(ctx, q, answers)
			p.cache.Put(q.ID, chips)
		}(q)
	}
}

// Wait blocks until all in-flight prefetches complete. Used by tests and at
// shutdown; the interview never waits on it.
func (p *Pipeline) Wait() {
	p.wg.Wait()
}
