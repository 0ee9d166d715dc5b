package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldASCII(t *testing.T) {
	tests := map[string]string{
		"":            "",
		"bitcoin":     "bitcoin",
		"Bitcoin":     "bitcoin",
		"BTC":         "btc",
		"S&P 500":     "s&p 500",
		"ÄBC":         "Äbc",
		"Straße DEFI": "straße defi",
	}
	for in, want := range tests {
		assert.Equal(t, want, FoldASCII(in), in)
	}
}

func TestHasPrefixFold(t *testing.T) {
	assert.True(t, HasPrefixFold("Bitcoin Cash", "BIT"))
	assert.True(t, HasPrefixFold("tech", ""))
	assert.False(t, HasPrefixFold("BTC", "bitcoin"))
	assert.False(t, HasPrefixFold("Ethereum", "bit"))
}

func TestFormatWithCommas(t *testing.T) {
	tests := map[int64]string{
		0:             "0",
		999:           "999",
		1000:          "1,000",
		2150000000000: "2,150,000,000,000",
		-1234567:      "-1,234,567",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatWithCommas(in))
	}
}

func TestIsSearchable(t *testing.T) {
	assert.False(t, IsSearchable("", 10))
	assert.True(t, IsSearchable("bit", 10))
	assert.False(t, IsSearchable("bitcoin cash", 10))
	assert.True(t, IsSearchable("bitcoin cash", 0))
}

func TestSymbolFilter(t *testing.T) {
	f := NewSymbolFilter(4)
	assert.True(t, f.ShouldInclude("NFLX"))
	assert.False(t, f.ShouldInclude("NFLX"))
	assert.True(t, f.ShouldInclude("nflx"))
}

func TestIsRepetitive(t *testing.T) {
	assert.True(t, IsRepetitive("aaa"))
	assert.False(t, IsRepetitive("aa"))
	assert.False(t, IsRepetitive("aab"))
}
