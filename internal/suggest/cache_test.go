package suggest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resonanceresearch/mentor/internal/domain"
)

func TestCache_GetMissVsEmptyEntry(t *testing.T) {
	c := NewCache()

	_, ok := c.Get("identity")
	assert.False(t, ok, "miss before any put")

	// An empty result is still authoritative.
	c.Put("identity", nil)
	chips, ok := c.Get("identity")
	assert.True(t, ok)
	assert.Empty(t, chips)
	assert.True(t, c.Has("identity"))
}

func TestCache_TruncatesToBound(t *testing.T) {
	c := NewCache()
	chips := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		chips = append(chips, fmt.Sprintf("chip %d", i))
	}

	c.Put("q1", chips)

	got, ok := c.Get("q1")
	assert.True(t, ok)
	assert.Len(t, got, maxCachedChips)
	assert.Equal(t, "chip 0", got[0])
}

func TestCache_CopiesOnGetAndPut(t *testing.T) {
	c := NewCache()
	src := []string{"alpha signaling", "beta pathways"}
	c.Put("q1", src)
	src[0] = "mutated"

	got, _ := c.Get("q1")
	assert.Equal(t, "alpha signaling", got[0])

	got[1] = "also mutated"
	again, _ := c.Get("q1")
	assert.Equal(t, "beta pathways", again[1])
}

func TestCache_IgnoresEmptyQuestionID(t *testing.T) {
	c := NewCache()
	c.Put("", []string{"orphan"})
	assert.Zero(t, c.Len())
}

func TestShouldFetch(t *testing.T) {
	q := domain.Question{ID: "funding", Text: "Which funding programs fit?"}

	assert.False(t, ShouldFetch(q, 0), "first question never fetches")
	assert.True(t, ShouldFetch(q, 1))
	assert.True(t, ShouldFetch(q, 7))

	q.NoChips = true
	assert.False(t, ShouldFetch(q, 3), "no_chips opts out")

	assert.False(t, ShouldFetch(domain.Question{}, 2), "empty id never fetches")
}
