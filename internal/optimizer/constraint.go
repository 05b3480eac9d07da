package optimizer

import (
	"longshort/internal/domain"
)

// ConstraintKind enumerates the closed set of constraint variants the
// solver understands. One generic solve function consumes the whole
// list; there is no per-kind dispatch interface.
type ConstraintKind int

const (
	KindBoxBound ConstraintKind = iota
	KindGrossLeverageBound
	KindDollarNeutral
	KindRiskFactorNeutral
)

// Constraint is a tagged variant. Only the fields relevant to its
// Kind are meaningful.
type Constraint struct {
	Kind ConstraintKind

	// KindBoxBound
	Asset domain.Asset
	Lower float64
	Upper float64

	// KindGrossLeverageBound
	MaxLeverage float64

	// KindDollarNeutral and KindRiskFactorNeutral
	Tolerance float64

	// KindRiskFactorNeutral
	RiskFactor string
}

// BoxBound keeps an asset's weight inside [lower, upper].
func BoxBound(asset domain.Asset, lower, upper float64) Constraint {
	return Constraint{
		Kind:  KindBoxBound,
		Asset: asset,
		Lower: lower,
		Upper: upper,
	}
}

// GrossLeverageBound caps the sum of absolute weights.
func GrossLeverageBound(maxLeverage float64) Constraint {
	return Constraint{
		Kind:        KindGrossLeverageBound,
		MaxLeverage: maxLeverage,
	}
}

// DollarNeutral keeps the signed weight sum within tolerance of zero.
func DollarNeutral(tolerance float64) Constraint {
	return Constraint{
		Kind:      KindDollarNeutral,
		Tolerance: tolerance,
	}
}

// RiskFactorNeutral keeps the portfolio's weighted exposure to one
// named risk factor within a symmetric tolerance band around zero.
func RiskFactorNeutral(riskFactor string, tolerance float64) Constraint {
	return Constraint{
		Kind:       KindRiskFactorNeutral,
		RiskFactor: riskFactor,
		Tolerance:  tolerance,
	}
}

// LongShortConstraints assembles the standard market-neutral
// constraint list: a box bound per candidate (longs in [0, longCap],
// shorts in [-shortCap, 0]), the gross leverage cap, dollar
// neutrality, and one neutrality band per risk factor.
func LongShortConstraints(
	candidates domain.CandidateSet,
	longCap float64,
	shortCap float64,
	maxGrossLeverage float64,
	dollarTolerance float64,
	riskFactors []string,
	riskTolerance float64,
) []Constraint {
	constraints := []Constraint{}
	for _, asset := range candidates.Longs {
		constraints = append(constraints, BoxBound(asset, 0, longCap))
	}
	for _, asset := range candidates.Shorts {
		constraints = append(constraints, BoxBound(asset, -shortCap, 0))
	}
	constraints = append(constraints, GrossLeverageBound(maxGrossLeverage))
	constraints = append(constraints, DollarNeutral(dollarTolerance))
	for _, f := range riskFactors {
		constraints = append(constraints, RiskFactorNeutral(f, riskTolerance))
	}
	return constraints
}
