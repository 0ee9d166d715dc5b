package rank

import (
	"math"
	"testing"

	"github.com/bastiangx/assetserve/pkg/asset"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	scorer := NewScorer(DefaultOptions())

	tests := []struct {
		name  string
		asset asset.Asset
		want  float64
	}{
		{"base only", asset.Asset{Category: "meme", MarketCap: 1e9, BaseScore: 72}, 72},
		{"preferred category", asset.Asset{Category: "defi", MarketCap: 1e9, BaseScore: 78}, 93},
		{"large cap", asset.Asset{Category: "layer1", MarketCap: 468_410_000_000, BaseScore: 88}, 98},
		{"both boosts clamp", asset.Asset{Category: "defi", MarketCap: 60_000_000_000, BaseScore: 78}, 100},
		{"cap at threshold is not boosted", asset.Asset{Category: "x", MarketCap: 50_000_000_000, BaseScore: 50}, 50},
		{"category match is case sensitive", asset.Asset{Category: "Tech", BaseScore: 50}, 50},
		{"zero", asset.Asset{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scorer.Score(tt.asset))
		})
	}
}

func TestScoreBounds(t *testing.T) {
	scorer := NewScorer(DefaultOptions())
	for _, a := range asset.Seed() {
		s := scorer.Score(a)
		assert.GreaterOrEqual(t, s, 0.0, a.Symbol)
		assert.LessOrEqual(t, s, 100.0, a.Symbol)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	scorer := NewScorer(DefaultOptions())
	a := asset.Asset{Category: "ai", MarketCap: 4_000_000_000, BaseScore: 85}
	assert.Equal(t, scorer.Score(a), scorer.Score(a))
}

func TestDisplayTruncates(t *testing.T) {
	opts := DefaultOptions()
	opts.PreferenceBoost = 2.9
	scorer := NewScorer(opts)

	a := asset.Asset{Category: "tech", BaseScore: 80}
	assert.InDelta(t, 82.9, scorer.Score(a), 1e-9)
	assert.Equal(t, 82, scorer.Display(a))
	assert.Equal(t, int(math.Floor(scorer.Score(a))), scorer.Display(a))
}

func TestNewScorerCopiesPreferences(t *testing.T) {
	opts := DefaultOptions()
	opts.Preferences = []string{"defi", "defi", "ai"}
	scorer := NewScorer(opts)
	opts.Preferences[0] = "meme"

	assert.Equal(t, []string{"defi", "ai"}, scorer.Preferences())
	assert.Equal(t, 15.0, scorer.Score(asset.Asset{Category: "defi"}))
	assert.Equal(t, 0.0, scorer.Score(asset.Asset{Category: "meme"}))
}

func TestZeroOptionsClampToZero(t *testing.T) {
	scorer := NewScorer(Options{})
	assert.Equal(t, 0.0, scorer.Score(asset.Asset{BaseScore: 90}))
}
