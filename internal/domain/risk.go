package domain

import "time"

// RiskLoadingMatrix maps each asset to its exposures against a fixed,
// named set of common risk factors. Supplied externally per rebalance
// date; the optimizer neutralizes the portfolio against each column.
type RiskLoadingMatrix struct {
	Date     time.Time
	Factors  []string
	Loadings map[Asset][]float64
}

// LoadingsFor returns the loading vector for an asset, or false if
// the risk model has no row for it.
func (m RiskLoadingMatrix) LoadingsFor(a Asset) ([]float64, bool) {
	v, ok := m.Loadings[a]
	if !ok || len(v) != len(m.Factors) {
		return nil, false
	}
	return v, true
}

// Restrict returns a copy of the matrix containing only the given
// assets.
func (m RiskLoadingMatrix) Restrict(assets []Asset) RiskLoadingMatrix {
	out := RiskLoadingMatrix{
		Date:     m.Date,
		Factors:  m.Factors,
		Loadings: map[Asset][]float64{},
	}
	for _, a := range assets {
		if v, ok := m.Loadings[a]; ok {
			out.Loadings[a] = v
		}
	}
	return out
}
