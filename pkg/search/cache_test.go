package search

import (
	"testing"

	"github.com/bastiangx/assetserve/pkg/asset"
	"github.com/stretchr/testify/assert"
)

func TestResultCacheGetPut(t *testing.T) {
	c := NewResultCache(4)

	_, ok := c.Get("bit", "")
	assert.False(t, ok)

	c.Put("bit", "", []asset.ID{0, 13})
	ids, ok := c.Get("bit", "")
	assert.True(t, ok)
	assert.Equal(t, []asset.ID{0, 13}, ids)

	_, ok = c.Get("bit", "crypto")
	assert.False(t, ok, "type filter is part of the key")

	stats := c.Stats()
	assert.Equal(t, 1, stats["cacheEntries"])
	assert.Equal(t, 1, stats["cacheHits"])
	assert.Equal(t, 2, stats["cacheMisses"])
}

func TestResultCacheCopies(t *testing.T) {
	c := NewResultCache(4)
	in := []asset.ID{1, 2}
	c.Put("q", "", in)
	in[0] = 99

	out, _ := c.Get("q", "")
	assert.Equal(t, []asset.ID{1, 2}, out)
	out[1] = 99

	again, _ := c.Get("q", "")
	assert.Equal(t, []asset.ID{1, 2}, again)
}

func TestResultCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewResultCache(2)
	c.Put("a", "", []asset.ID{1})
	c.Put("b", "", []asset.ID{2})
	c.Get("a", "")
	c.Put("c", "", []asset.ID{3})

	_, ok := c.Get("b", "")
	assert.False(t, ok)
	_, ok = c.Get("a", "")
	assert.True(t, ok)
	_, ok = c.Get("c", "")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Stats()["cacheEntries"])
}

func TestResultCacheDisabled(t *testing.T) {
	for _, size := range []int{0, -5} {
		c := NewResultCache(size)
		c.Put("a", "", []asset.ID{1})
		_, ok := c.Get("a", "")
		assert.False(t, ok)
		assert.Equal(t, 0, c.Stats()["maxEntries"])
	}
}

func TestResultCacheEmptyList(t *testing.T) {
	c := NewResultCache(1)
	c.Put("zzz", "", []asset.ID{})

	ids, ok := c.Get("zzz", "")
	assert.True(t, ok)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}
