package internal

import (
	"fmt"

	"longshort/internal/domain"
)

// WeightedFactor pairs a normalized factor snapshot with its blend
// weight. Weights are static per strategy configuration and are used
// as-is; they need not sum to 1.
type WeightedFactor struct {
	Snapshot domain.FactorSnapshot
	Weight   float64
}

// BlendFactors combines normalized factors into one composite score
// per asset: score = sum(weight_i * z_i). An asset missing any of the
// input factors is excluded from the output entirely - ranking
// requires a complete feature vector.
func BlendFactors(factors []WeightedFactor) (domain.CompositeScore, error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("cannot blend zero factors")
	}

	score := domain.CompositeScore{}
	for asset, v := range factors[0].Snapshot.Values {
		if v == nil {
			continue
		}
		score[asset] = factors[0].Weight * *v
	}

	for _, f := range factors[1:] {
		for asset := range score {
			v, ok := f.Snapshot.Values[asset]
			if !ok || v == nil {
				delete(score, asset)
				continue
			}
			score[asset] += f.Weight * *v
		}
	}

	return score, nil
}
