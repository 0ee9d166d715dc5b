// Package asset holds the catalog records served by assetserve and the
// read-only Store they are kept in.
package asset

// Type tags an asset as a cryptocurrency or a stock.
type Type string

const (
	Crypto Type = "crypto"
	Stock  Type = "stock"
)

// Valid reports whether t is one of the known asset types.
func (t Type) Valid() bool {
	return t == Crypto || t == Stock
}

// ID addresses an asset by its position in a Store.
type ID int

// Asset is a single catalog record. MarketCap is in currency units,
// Change is a percentage and BaseScore lies in [0,100].
type Asset struct {
	Name      string  `toml:"name" json:"name" msgpack:"name"`
	Symbol    string  `toml:"symbol" json:"symbol" msgpack:"symbol"`
	Category  string  `toml:"category" json:"category" msgpack:"category"`
	Type      Type    `toml:"type" json:"type" msgpack:"type"`
	Price     float64 `toml:"price" json:"price" msgpack:"price"`
	Change    float64 `toml:"change" json:"change" msgpack:"change"`
	MarketCap int64   `toml:"market_cap" json:"marketCap" msgpack:"market_cap"`
	BaseScore int     `toml:"base_score" json:"baseScore" msgpack:"base_score"`
}
