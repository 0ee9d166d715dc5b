package utils

// SymbolFilter drops repeated ticker symbols, keeping the first one seen.
// Symbols compare exactly; "BTC" and "btc" are different tickers.
// It is not safe for concurrent use; make one per result set.
type SymbolFilter struct {
	seen map[string]struct{}
}

// NewSymbolFilter creates a filter sized for about n symbols.
func NewSymbolFilter(n int) *SymbolFilter {
	return &SymbolFilter{seen: make(map[string]struct{}, n)}
}

// ShouldInclude reports whether symbol is new to the filter and records it.
func (f *SymbolFilter) ShouldInclude(symbol string) bool {
	if _, ok := f.seen[symbol]; ok {
		return false
	}
	f.seen[symbol] = struct{}{}
	return true
}
