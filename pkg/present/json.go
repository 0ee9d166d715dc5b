// Package present renders pipeline output in the shape HTTP and IPC
// clients receive.
package present

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bastiangx/assetserve/pkg/asset"
	"github.com/bastiangx/assetserve/pkg/search"
	"github.com/shopspring/decimal"
)

// AssetView is one asset as clients see it. Cap is in billions and Score is
// the truncated display score.
type AssetView struct {
	Name     string  `json:"name" msgpack:"name"`
	Symbol   string  `json:"symbol" msgpack:"symbol"`
	Price    float64 `json:"price" msgpack:"price"`
	Change   float64 `json:"change" msgpack:"change"`
	Cap      float64 `json:"cap" msgpack:"cap"`
	Category string  `json:"category" msgpack:"category"`
	Type     string  `json:"type" msgpack:"type"`
	Score    int     `json:"score" msgpack:"score"`
}

// StatsView is the stats payload. TotalCap is in trillions.
type StatsView struct {
	Total    int     `json:"total" msgpack:"total"`
	Cryptos  int     `json:"cryptos" msgpack:"cryptos"`
	Stocks   int     `json:"stocks" msgpack:"stocks"`
	AvgScore int     `json:"avgScore" msgpack:"avgScore"`
	TotalCap float64 `json:"totalCap" msgpack:"totalCap"`
}

// ErrorView is the body of every error reply.
type ErrorView struct {
	Error string `json:"error" msgpack:"error"`
}

// HealthView reports liveness and catalog size.
type HealthView struct {
	Status string `json:"status" msgpack:"status"`
	Assets int    `json:"assets" msgpack:"assets"`
}

// NotFound is the fixed payload for unknown routes.
var NotFound = ErrorView{Error: "Not found"}

// Scorer is the part of the pipeline needed to fill in display scores.
type Scorer interface {
	Display(a asset.Asset) int
}

// Asset converts a single asset.
func Asset(a asset.Asset, sc Scorer) AssetView {
	return AssetView{
		Name:     a.Name,
		Symbol:   a.Symbol,
		Price:    a.Price,
		Change:   a.Change,
		Cap:      decimal.NewFromInt(a.MarketCap).Shift(-9).InexactFloat64(),
		Category: a.Category,
		Type:     string(a.Type),
		Score:    sc.Display(a),
	}
}

// Assets converts a ranked list, keeping its order. The result is never nil
// so an empty list encodes as [] rather than null.
func Assets(list []asset.Asset, sc Scorer) []AssetView {
	out := make([]AssetView, len(list))
	for i, a := range list {
		out[i] = Asset(a, sc)
	}
	return out
}

// Stats converts pipeline stats.
func Stats(st search.Stats) StatsView {
	return StatsView{
		Total:    st.Total,
		Cryptos:  st.Cryptos,
		Stocks:   st.Stocks,
		AvgScore: st.AvgScore,
		TotalCap: st.TotalCap.InexactFloat64(),
	}
}

// EncodeAssets renders a ranked list as a JSON array.
func EncodeAssets(list []asset.Asset, sc Scorer) (string, error) {
	return Encode(Assets(list, sc))
}

// EncodeStats renders stats as a JSON object.
func EncodeStats(st search.Stats) (string, error) {
	return Encode(Stats(st))
}

// Encode marshals v as compact JSON. Strings are escaped as JSON requires
// but HTML characters are left alone, so "S&P" stays readable.
func Encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode %T: %w", v, err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})), nil
}
