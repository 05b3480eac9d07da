package domain

import "time"

// Universe is the set of assets eligible for one rebalance date,
// produced by intersecting the external eligibility predicates.
// AvgDollarVolume is optional per asset and only consulted when the
// strategy configures a liquidity floor.
type Universe struct {
	Date            time.Time
	Eligible        AssetSet
	AvgDollarVolume map[Asset]float64
}

func (u Universe) Size() int {
	return len(u.Eligible)
}

// CandidateSet is the fixed-size long and short pools drawn from the
// universe by composite-score rank. Longs and Shorts are disjoint and
// each hold exactly K assets, ordered best-first (highest scores lead
// Longs, lowest scores lead Shorts).
type CandidateSet struct {
	Longs  []Asset
	Shorts []Asset
}

func (c CandidateSet) Contains(a Asset) bool {
	for _, l := range c.Longs {
		if l == a {
			return true
		}
	}
	for _, s := range c.Shorts {
		if s == a {
			return true
		}
	}
	return false
}

// All returns longs then shorts, each sorted by symbol. The order is
// the canonical variable order for the optimizer.
func (c CandidateSet) All() []Asset {
	longs := append([]Asset{}, c.Longs...)
	shorts := append([]Asset{}, c.Shorts...)
	SortAssets(longs)
	SortAssets(shorts)
	return append(longs, shorts...)
}

func (c CandidateSet) IsLong(a Asset) bool {
	for _, l := range c.Longs {
		if l == a {
			return true
		}
	}
	return false
}
