// Package index is the prefix index over asset names, symbols and categories.
//
// Keys are ASCII-folded copies of the indexed text. Each key holds the ids of
// every asset that produced it, so "tech" carries all tech stocks and
// "bitcoin" carries exactly one. The trie never stores assets themselves;
// ids are resolved against the asset.Store the index was built from.
package index

import (
	"errors"

	"github.com/bastiangx/assetserve/internal/utils"
	"github.com/bastiangx/assetserve/pkg/asset"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// errLimit stops a subtree walk once enough ids were collected.
var errLimit = errors.New("index: result limit reached")

// Trie maps folded text to the asset ids that were inserted under it.
// It is built once and only read afterwards, so concurrent searches are safe.
type Trie struct {
	trie *patricia.Trie
	keys int
	refs int
}

// NewTrie returns an empty index.
func NewTrie() *Trie {
	return &Trie{trie: patricia.NewTrie()}
}

// FromStore indexes the name, symbol and category of every asset in s.
func FromStore(s *asset.Store) *Trie {
	t := NewTrie()
	s.Each(func(id asset.ID, a asset.Asset) {
		t.Insert(a.Name, id)
		t.Insert(a.Symbol, id)
		t.Insert(a.Category, id)
	})
	log.Debugf("Indexed %d assets: %d keys, %d refs", s.Len(), t.keys, t.refs)
	return t
}

// Insert appends id to the key for text. Inserting the same text for
// several assets accumulates them under one key, in insertion order.
// Empty text is skipped: no search ever reaches the root's own entries.
func (t *Trie) Insert(text string, id asset.ID) {
	if text == "" {
		return
	}
	key := patricia.Prefix(utils.FoldASCII(text))
	if item := t.trie.Get(key); item != nil {
		t.trie.Set(key, append(item.([]asset.ID), id))
	} else {
		t.trie.Insert(key, []asset.ID{id})
		t.keys++
	}
	t.refs++
}

// Search returns up to maxResults ids whose key starts with prefix.
// The node matching prefix exactly contributes its ids first, then the
// subtree below it is walked; order beyond that is not meaningful.
// An unknown prefix yields an empty slice.
func (t *Trie) Search(prefix string, maxResults int) []asset.ID {
	results := make([]asset.ID, 0)
	if maxResults <= 0 {
		return results
	}

	err := t.trie.VisitSubtree(patricia.Prefix(utils.FoldASCII(prefix)), func(_ patricia.Prefix, item patricia.Item) error {
		for _, id := range item.([]asset.ID) {
			if len(results) >= maxResults {
				return errLimit
			}
			results = append(results, id)
		}
		if len(results) >= maxResults {
			return errLimit
		}
		return nil
	})
	if err != nil && !errors.Is(err, errLimit) {
		log.Errorf("Error visiting index subtree for %q: %v", prefix, err)
	}
	return results
}

// Stats reports the number of distinct keys and of stored ids.
func (t *Trie) Stats() map[string]int {
	return map[string]int{
		"keys": t.keys,
		"refs": t.refs,
	}
}
