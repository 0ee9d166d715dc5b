package asset

// Store is the ordered asset collection loaded at startup.
// It has no mutation API; every accessor hands out copies.
type Store struct {
	assets []Asset
}

// NewStore copies assets into a new Store, keeping their order.
func NewStore(assets []Asset) *Store {
	owned := make([]Asset, len(assets))
	copy(owned, assets)
	return &Store{assets: owned}
}

// Len returns the number of stored assets.
func (s *Store) Len() int {
	return len(s.assets)
}

// At returns the asset with the given id. Callers only get ids from the
// store itself or from an index built over it.
func (s *Store) At(id ID) Asset {
	return s.assets[id]
}

// Each calls fn for every asset in load order.
func (s *Store) Each(fn func(id ID, a Asset)) {
	for i := range s.assets {
		fn(ID(i), s.assets[i])
	}
}

// All returns a copy of every asset in load order.
func (s *Store) All() []Asset {
	out := make([]Asset, len(s.assets))
	copy(out, s.assets)
	return out
}
