package search

import (
	"math"
	"sync"

	"github.com/bastiangx/assetserve/pkg/asset"
	"github.com/charmbracelet/log"
)

// ResultCache keeps ranked id lists for recent (query, type) pairs.
// The store and index never change after startup, so an entry stays valid
// for the life of the process; the only reason to drop one is room.
type ResultCache struct {
	entries     map[cacheKey][]asset.ID
	accessTime  map[cacheKey]int64
	accessCount int64
	hits        int64
	misses      int64
	maxEntries  int
	mu          sync.Mutex
}

type cacheKey struct {
	query      string
	typeFilter string
}

// NewResultCache returns a cache holding at most maxEntries lists.
// A non-positive size gives a cache that stores nothing.
func NewResultCache(maxEntries int) *ResultCache {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &ResultCache{
		entries:    make(map[cacheKey][]asset.ID, maxEntries),
		accessTime: make(map[cacheKey]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// Get returns a copy of the cached ids for the pair.
func (rc *ResultCache) Get(query, typeFilter string) ([]asset.ID, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	key := cacheKey{query, typeFilter}
	ids, ok := rc.entries[key]
	if !ok {
		rc.misses++
		return nil, false
	}
	rc.hits++
	rc.accessTime[key] = rc.nextAccessTime()
	out := make([]asset.ID, len(ids))
	copy(out, ids)
	return out, true
}

// Put stores a copy of ids, evicting the least recently used entry when full.
func (rc *ResultCache) Put(query, typeFilter string, ids []asset.ID) {
	if rc.maxEntries == 0 {
		return
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()

	key := cacheKey{query, typeFilter}
	if _, exists := rc.entries[key]; !exists && len(rc.entries) >= rc.maxEntries {
		rc.evictLRU()
	}
	stored := make([]asset.ID, len(ids))
	copy(stored, ids)
	rc.entries[key] = stored
	rc.accessTime[key] = rc.nextAccessTime()
}

// Stats reports the cache occupancy and hit counters.
func (rc *ResultCache) Stats() map[string]int {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	return map[string]int{
		"cacheEntries": len(rc.entries),
		"maxEntries":   rc.maxEntries,
		"cacheHits":    int(rc.hits),
		"cacheMisses":  int(rc.misses),
	}
}

func (rc *ResultCache) nextAccessTime() int64 {
	rc.accessCount++
	return rc.accessCount
}

func (rc *ResultCache) evictLRU() {
	var oldest cacheKey
	var oldestTime int64 = math.MaxInt64
	found := false

	for key, t := range rc.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldest = key
			found = true
		}
	}

	if found {
		delete(rc.entries, oldest)
		delete(rc.accessTime, oldest)
		log.Debugf("Evicted query %q (type %q) from result cache", oldest.query, oldest.typeFilter)
	}
}
