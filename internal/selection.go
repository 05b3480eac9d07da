package internal

import (
	"fmt"
	"sort"

	"longshort/internal/domain"
)

// SelectCandidates restricts the composite score to the eligible
// universe, ranks it descending, and takes the first K assets as the
// long pool and the last K as the short pool. Ties break on asset
// symbol so selection is reproducible run to run.
func SelectCandidates(score domain.CompositeScore, universe domain.Universe, k int) (domain.CandidateSet, error) {
	if k <= 0 {
		return domain.CandidateSet{}, fmt.Errorf("candidate pool size per side must be positive, got %d", k)
	}

	type rankedAsset struct {
		Asset domain.Asset
		Score float64
	}

	ranked := []rankedAsset{}
	for asset, s := range score {
		if universe.Eligible.Contains(asset) {
			ranked = append(ranked, rankedAsset{Asset: asset, Score: s})
		}
	}

	if len(ranked) < 2*k {
		return domain.CandidateSet{}, InsufficientUniverseError{
			Eligible: len(ranked),
			Required: 2 * k,
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Asset < ranked[j].Asset
	})

	candidates := domain.CandidateSet{
		Longs:  make([]domain.Asset, 0, k),
		Shorts: make([]domain.Asset, 0, k),
	}
	for _, r := range ranked[:k] {
		candidates.Longs = append(candidates.Longs, r.Asset)
	}
	// shorts come off the bottom of the same sorted order, worst last
	for _, r := range ranked[len(ranked)-k:] {
		candidates.Shorts = append(candidates.Shorts, r.Asset)
	}

	// invariant: Longs and Shorts are disjoint
	longSet := domain.NewAssetSet(candidates.Longs...)
	for _, s := range candidates.Shorts {
		if longSet.Contains(s) {
			return domain.CandidateSet{}, fmt.Errorf("asset %s selected for both long and short pools", s)
		}
	}

	return candidates, nil
}
