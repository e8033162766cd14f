package dedup

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSeenCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cache := NewSeenCache(dir, zerolog.Nop())
	assert.False(t, cache.IsSeen("https://example.com.au/job/1"))

	cache.Add("https://example.com.au/job/1", "https://example.com.au/job/2")
	assert.True(t, cache.IsSeen("https://example.com.au/job/1"))
	assert.True(t, cache.IsSeen("https://example.com.au/job/2"))

	//a fresh cache over the same directory must see the persisted state
	reloaded := NewSeenCache(dir, zerolog.Nop())
	assert.True(t, reloaded.IsSeen("https://example.com.au/job/1"))
	assert.False(t, reloaded.IsSeen("https://example.com.au/job/3"))
}
