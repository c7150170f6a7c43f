package suggest

import (
	"sync"

	"github.com/resonanceresearch/mentor/internal/domain"
)

// maxCachedChips bounds the stored set per question id.
const maxCachedChips = 12

// Cache holds the chip sets fetched this session, keyed by question id. Once
// an entry exists for an id it is authoritative for the rest of the session:
// later fetches for the same id are skipped even though the remote answer
// might differ. Clearing the cache never touches interview state.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]string
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: map[string][]string{}}
}

// Has reports whether an entry exists for the question id.
func (c *Cache) Has(questionID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[questionID]
	return ok
}

// Get returns the cached chip set for the question id. The second return is
// false when no entry exists; an empty cached list is a valid entry.
func (c *Cache) Get(questionID string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	chips, ok := c.entries[questionID]
	if !ok {
		return nil, false
	}
	out := make([]string, len(chips))
	copy(out, chips)
	return out, true
}

// Put stores a chip set for the question id, silently truncating to the
// per-question bound. Concurrent puts for the same id are tolerated; the last
// write wins and both results are equivalent in practice.
func (c *Cache) Put(questionID string, chips []string) {
	if questionID == "" {
		return
	}
	if len(chips) > maxCachedChips {
		chips = chips[:maxCachedChips]
	}
	stored := make([]string, len(chips))
	copy(stored, chips)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[questionID] = stored
}

// Len returns the number of cached question ids.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// ShouldFetch reports whether suggestions should ever be fetched for the
// question at the given sequence position. The first question gets no chips,
// and questions can opt out via the no_chips flag.
func ShouldFetch(q domain.Question, position int) bool {
	if q.ID == "" {
		return false
	}
	if position == 0 {
		return false
	}
	return !q.NoChips
}
