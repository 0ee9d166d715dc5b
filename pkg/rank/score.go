// Package rank computes the relevance score used to order assets.
package rank

import (
	"math"

	"github.com/bastiangx/assetserve/pkg/asset"
)

// Options configures a Scorer. The zero value scores every asset with its
// base score clamped to [0, MaxScore]; see DefaultOptions for the stock setup.
type Options struct {
	Preferences     []string
	PreferenceBoost float64
	CapBoost        float64
	CapThreshold    int64
	MaxScore        float64
}

// DefaultOptions boosts defi, ai and tech assets by 15, assets worth more
// than 50 billion by 10, and caps scores at 100.
func DefaultOptions() Options {
	return Options{
		Preferences:     []string{"defi", "ai", "tech"},
		PreferenceBoost: 15,
		CapBoost:        10,
		CapThreshold:    50_000_000_000,
		MaxScore:        100,
	}
}

// Scorer is a pure scoring function bound to a fixed preference list.
type Scorer struct {
	opts  Options
	prefs map[string]struct{}
}

// NewScorer copies opts so later changes to the caller's slice have no effect.
func NewScorer(opts Options) *Scorer {
	prefs := make(map[string]struct{}, len(opts.Preferences))
	tags := make([]string, 0, len(opts.Preferences))
	for _, p := range opts.Preferences {
		if _, dup := prefs[p]; dup {
			continue
		}
		prefs[p] = struct{}{}
		tags = append(tags, p)
	}
	opts.Preferences = tags
	return &Scorer{opts: opts, prefs: prefs}
}

// Score returns the asset's relevance in [0, MaxScore].
// Category matching is exact and case-sensitive.
func (s *Scorer) Score(a asset.Asset) float64 {
	score := float64(a.BaseScore)
	if _, ok := s.prefs[a.Category]; ok {
		score += s.opts.PreferenceBoost
	}
	if a.MarketCap > s.opts.CapThreshold {
		score += s.opts.CapBoost
	}
	return math.Max(0, math.Min(s.opts.MaxScore, score))
}

// Display is the integer score shown to clients: Score truncated toward zero.
// Sorting and display both go through Score, so the two never disagree.
func (s *Scorer) Display(a asset.Asset) int {
	return int(s.Score(a))
}

// Preferences returns the boosted category tags in configuration order.
func (s *Scorer) Preferences() []string {
	out := make([]string, len(s.opts.Preferences))
	copy(out, s.opts.Preferences)
	return out
}
