package domain

import "math"

// TargetWeightVector is the optimizer's output: signed fraction of
// portfolio notional per asset. Assets outside the candidate set are
// simply absent (structurally zero). Produced once per rebalance and
// handed straight to the execution layer - never retained as mutable
// state.
type TargetWeightVector map[Asset]float64

// GrossLeverage is the sum of absolute weights.
func (w TargetWeightVector) GrossLeverage() float64 {
	total := 0.0
	for _, v := range w {
		total += math.Abs(v)
	}
	return total
}

// NetExposure is the signed sum of weights. Zero (within tolerance)
// for a dollar-neutral book.
func (w TargetWeightVector) NetExposure() float64 {
	total := 0.0
	for _, v := range w {
		total += v
	}
	return total
}

// FactorExposure is the weighted exposure against one risk factor
// column of the loading matrix.
func (w TargetWeightVector) FactorExposure(m RiskLoadingMatrix, factorIdx int) float64 {
	total := 0.0
	for asset, weight := range w {
		if v, ok := m.LoadingsFor(asset); ok {
			total += weight * v[factorIdx]
		}
	}
	return total
}

// PositionCount returns the number of non-trivial positions.
func (w TargetWeightVector) PositionCount() int {
	n := 0
	for _, v := range w {
		if math.Abs(v) > 1e-10 {
			n++
		}
	}
	return n
}
