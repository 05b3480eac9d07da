package domain

import "sort"

// Asset is the stable identifier for a tradable instrument. It is
// identity only - all behavior lives in the mappings keyed by it.
type Asset string

func SortAssets(assets []Asset) {
	sort.Slice(assets, func(i, j int) bool {
		return assets[i] < assets[j]
	})
}

// AssetSet is an unordered collection of assets with set semantics.
type AssetSet map[Asset]struct{}

func NewAssetSet(assets ...Asset) AssetSet {
	s := AssetSet{}
	for _, a := range assets {
		s[a] = struct{}{}
	}
	return s
}

func (s AssetSet) Contains(a Asset) bool {
	_, ok := s[a]
	return ok
}

func (s AssetSet) Add(a Asset) {
	s[a] = struct{}{}
}

// Intersect returns the assets present in both sets.
func (s AssetSet) Intersect(other AssetSet) AssetSet {
	out := AssetSet{}
	for a := range s {
		if other.Contains(a) {
			out.Add(a)
		}
	}
	return out
}

// Sorted returns the members ordered by symbol so that iteration
// order is reproducible.
func (s AssetSet) Sorted() []Asset {
	out := make([]Asset, 0, len(s))
	for a := range s {
		out = append(out, a)
	}
	SortAssets(out)
	return out
}
