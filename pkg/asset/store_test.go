package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreCopiesInput(t *testing.T) {
	in := []Asset{{Name: "Bitcoin", Symbol: "BTC", Type: Crypto}}
	s := NewStore(in)
	in[0].Name = "changed"

	assert.Equal(t, "Bitcoin", s.At(0).Name)
}

func TestStoreAllReturnsCopy(t *testing.T) {
	s := NewStore(Seed())
	all := s.All()
	all[0].Symbol = "XXX"

	assert.Equal(t, "BTC", s.At(0).Symbol)
}

func TestStoreEachKeepsOrder(t *testing.T) {
	seed := Seed()
	s := NewStore(seed)

	var ids []ID
	s.Each(func(id ID, a Asset) {
		ids = append(ids, id)
		assert.Equal(t, seed[id], a)
	})
	require.Len(t, ids, len(seed))
	for i, id := range ids {
		assert.Equal(t, ID(i), id)
	}
}

func TestEmptyStore(t *testing.T) {
	s := NewStore(nil)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())

	called := false
	s.Each(func(ID, Asset) { called = true })
	assert.False(t, called)
}

func TestSeedInvariants(t *testing.T) {
	seed := Seed()
	require.Len(t, seed, 89)

	counts := map[Type]int{}
	for _, a := range seed {
		assert.True(t, a.Type.Valid(), "%s has type %q", a.Symbol, a.Type)
		assert.GreaterOrEqual(t, a.BaseScore, 0)
		assert.LessOrEqual(t, a.BaseScore, 100)
		assert.NotEmpty(t, a.Symbol)
		counts[a.Type]++
	}
	assert.Equal(t, 46, counts[Crypto])
	assert.Equal(t, 43, counts[Stock])
}

func TestTypeValid(t *testing.T) {
	assert.True(t, Crypto.Valid())
	assert.True(t, Stock.Valid())
	assert.False(t, Type("bond").Valid())
	assert.False(t, Type("Crypto").Valid())
	assert.False(t, Type("").Valid())
}
