package search

import (
	"sort"

	"github.com/bastiangx/assetserve/internal/utils"
	"github.com/bastiangx/assetserve/pkg/asset"
	"github.com/bastiangx/assetserve/pkg/index"
	"github.com/bastiangx/assetserve/pkg/rank"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

// Options bounds the pipeline.
type Options struct {
	ResultLimit    int // max assets returned by Search
	RecommendLimit int // max assets returned by Recommend
	RawMatchCap    int // max ids pulled from the index before filtering
	MaxQueryLen    int // longer queries match nothing; <= 0 disables the check
	CacheSize      int // Search result cache entries; 0 disables caching
}

// DefaultOptions mirrors the limits of the public API.
func DefaultOptions() Options {
	return Options{
		ResultLimit:    50,
		RecommendLimit: 5,
		RawMatchCap:    200,
		MaxQueryLen:    256,
		CacheSize:      256,
	}
}

// Stats is the catalog summary returned by Engine.Stats.
type Stats struct {
	Total    int
	Cryptos  int
	Stocks   int
	AvgScore int             // mean score truncated toward zero
	TotalCap decimal.Decimal // sum of market caps in trillions
}

// Engine runs queries against a read-only store and its index.
// All methods are safe for concurrent use.
type Engine struct {
	store  *asset.Store
	trie   *index.Trie
	scorer *rank.Scorer
	cache  *ResultCache
	opts   Options
}

// NewEngine wires a pipeline over store. trie must have been built from the
// same store.
func NewEngine(store *asset.Store, trie *index.Trie, scorer *rank.Scorer, opts Options) *Engine {
	return &Engine{
		store:  store,
		trie:   trie,
		scorer: scorer,
		cache:  NewResultCache(opts.CacheSize),
		opts:   opts,
	}
}

// New builds the index for store and returns an engine over it.
func New(store *asset.Store, scorer *rank.Scorer, opts Options) *Engine {
	return NewEngine(store, index.FromStore(store), scorer, opts)
}

// Search looks query up in the index (or scans everything when it is empty),
// keeps assets of typeFilter when one is given, drops repeated symbols,
// ranks by score and caps the list.
//
// Repeated symbols are dropped before ranking: the copy that comes first in
// candidate order wins, whatever its score.
func (e *Engine) Search(query, typeFilter string) []asset.Asset {
	if ids, ok := e.cache.Get(query, typeFilter); ok {
		return e.resolve(ids)
	}

	var candidates []asset.ID
	switch {
	case query == "":
		candidates = e.scan(typeFilter)
	case utils.IsSearchable(query, e.opts.MaxQueryLen):
		candidates = e.filter(e.trie.Search(query, e.opts.RawMatchCap), typeFilter)
	default:
		// Rejected queries are never cached.
		log.Debugf("Query of %d bytes exceeds max length %d", len(query), e.opts.MaxQueryLen)
		return []asset.Asset{}
	}

	ids := e.dedupe(candidates)
	e.rank(ids)
	ids = capIDs(ids, e.opts.ResultLimit)

	e.cache.Put(query, typeFilter, ids)
	return e.resolve(ids)
}

// Recommend ranks every asset of typeFilter (all assets when empty) and
// returns the best few. Repeated symbols are kept.
func (e *Engine) Recommend(typeFilter string) []asset.Asset {
	ids := e.scan(typeFilter)
	e.rank(ids)
	return e.resolve(capIDs(ids, e.opts.RecommendLimit))
}

// Stats counts assets per type, averages their scores and sums market caps.
func (e *Engine) Stats() Stats {
	var st Stats
	var scoreSum float64
	capSum := decimal.Zero

	e.store.Each(func(_ asset.ID, a asset.Asset) {
		st.Total++
		switch a.Type {
		case asset.Crypto:
			st.Cryptos++
		case asset.Stock:
			st.Stocks++
		}
		scoreSum += e.scorer.Score(a)
		capSum = capSum.Add(decimal.NewFromInt(a.MarketCap))
	})

	if st.Total > 0 {
		st.AvgScore = int(scoreSum / float64(st.Total))
	}
	st.TotalCap = capSum.Shift(-12)
	return st
}

// Display is the integer score shown for a.
func (e *Engine) Display(a asset.Asset) int {
	return e.scorer.Display(a)
}

// CacheStats exposes the result cache counters.
func (e *Engine) CacheStats() map[string]int {
	return e.cache.Stats()
}

func (e *Engine) scan(typeFilter string) []asset.ID {
	ids := make([]asset.ID, 0, e.store.Len())
	e.store.Each(func(id asset.ID, a asset.Asset) {
		if matchesType(a, typeFilter) {
			ids = append(ids, id)
		}
	})
	return ids
}

func (e *Engine) filter(ids []asset.ID, typeFilter string) []asset.ID {
	if typeFilter == "" {
		return ids
	}
	kept := ids[:0]
	for _, id := range ids {
		if matchesType(e.store.At(id), typeFilter) {
			kept = append(kept, id)
		}
	}
	return kept
}

func (e *Engine) dedupe(ids []asset.ID) []asset.ID {
	seen := utils.NewSymbolFilter(len(ids))
	unique := make([]asset.ID, 0, len(ids))
	for _, id := range ids {
		if seen.ShouldInclude(e.store.At(id).Symbol) {
			unique = append(unique, id)
		}
	}
	return unique
}

// rank sorts ids by score, highest first. Equal scores keep their order.
func (e *Engine) rank(ids []asset.ID) {
	scores := make(map[asset.ID]float64, len(ids))
	for _, id := range ids {
		scores[id] = e.scorer.Score(e.store.At(id))
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return scores[ids[i]] > scores[ids[j]]
	})
}

func (e *Engine) resolve(ids []asset.ID) []asset.Asset {
	out := make([]asset.Asset, len(ids))
	for i, id := range ids {
		out[i] = e.store.At(id)
	}
	return out
}

func matchesType(a asset.Asset, typeFilter string) bool {
	return typeFilter == "" || string(a.Type) == typeFilter
}

// capIDs keeps at most limit ids. A negative limit keeps none.
func capIDs(ids []asset.ID, limit int) []asset.ID {
	limit = max(limit, 0)
	if len(ids) > limit {
		return ids[:limit]
	}
	return ids
}
