package optimizer

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"longshort/internal"
	"longshort/internal/domain"
)

// feasibilityTol absorbs simplex round-off when verifying the
// returned solution against the original constraints.
const feasibilityTol = 1e-8

// Problem is one rebalance date's optimization: maximize the
// composite-score-weighted book subject to the constraint list.
// Constructed fresh per cycle and never mutated.
type Problem struct {
	Candidates   domain.CandidateSet
	Scores       domain.CompositeScore
	RiskLoadings domain.RiskLoadingMatrix
	Constraints  []Constraint
}

// Solve maximizes sum(weight_i * score_i) over the candidate set
// subject to every constraint in the problem. The gross-leverage
// bound is linearized by fixing each asset's weight sign to its side
// (longs non-negative, shorts non-positive) and solving over
// magnitudes; inequality rows get non-negative slack variables,
// producing a standard-form LP handed to gonum's simplex solver.
//
// Variables follow the canonical candidate order (sorted longs, then
// sorted shorts), so identical inputs yield identical solutions. On
// any solver failure the returned error is an
// InfeasibleOptimizationError; no partial solution is ever returned.
func Solve(p Problem) (domain.TargetWeightVector, error) {
	assets := p.Candidates.All()
	n := len(assets)
	if n == 0 {
		return nil, fmt.Errorf("cannot optimize an empty candidate set")
	}

	parsed, err := parseConstraints(p, assets)
	if err != nil {
		return nil, err
	}

	signs := make([]float64, n)
	scores := make([]float64, n)
	caps := make([]float64, n)
	for i, asset := range assets {
		signs[i] = 1
		if !p.Candidates.IsLong(asset) {
			signs[i] = -1
		}

		score, ok := p.Scores[asset]
		if !ok {
			return nil, internal.MissingDataError{What: fmt.Sprintf("composite score for %s", asset), Date: p.RiskLoadings.Date}
		}
		scores[i] = score

		box, ok := parsed.boxByAsset[asset]
		if !ok {
			return nil, fmt.Errorf("no box bound supplied for candidate %s", asset)
		}
		caps[i], err = sideCap(box, signs[i])
		if err != nil {
			return nil, err
		}
	}

	riskColumns := make([][]float64, len(parsed.risk))
	for f, rc := range parsed.risk {
		column := make([]float64, n)
		idx := riskFactorIndex(p.RiskLoadings, rc.RiskFactor)
		if idx < 0 {
			return nil, internal.MissingDataError{What: fmt.Sprintf("risk factor %s", rc.RiskFactor), Date: p.RiskLoadings.Date}
		}
		for i, asset := range assets {
			loadings, ok := p.RiskLoadings.LoadingsFor(asset)
			if !ok {
				return nil, internal.MissingDataError{What: fmt.Sprintf("risk loadings for %s", asset), Date: p.RiskLoadings.Date}
			}
			column[i] = loadings[idx]
		}
		riskColumns[f] = column
	}

	magnitudes, err := solveStandardForm(signs, scores, caps, parsed, riskColumns)
	if err != nil {
		return nil, err
	}

	weights := domain.TargetWeightVector{}
	for i, asset := range assets {
		w := signs[i] * magnitudes[i]
		if math.Abs(w) < 1e-12 {
			w = 0
		}
		weights[asset] = w
	}

	err = verify(weights, assets, parsed, p.RiskLoadings)
	if err != nil {
		return nil, internal.InfeasibleOptimizationError{Err: err}
	}

	return weights, nil
}

type parsedConstraints struct {
	boxByAsset map[domain.Asset]Constraint
	gross      *Constraint
	dollar     *Constraint
	risk       []Constraint
}

func parseConstraints(p Problem, assets []domain.Asset) (*parsedConstraints, error) {
	parsed := &parsedConstraints{
		boxByAsset: map[domain.Asset]Constraint{},
	}
	for _, c := range p.Constraints {
		c := c
		switch c.Kind {
		case KindBoxBound:
			if _, ok := parsed.boxByAsset[c.Asset]; ok {
				return nil, fmt.Errorf("duplicate box bound for %s", c.Asset)
			}
			parsed.boxByAsset[c.Asset] = c
		case KindGrossLeverageBound:
			if parsed.gross != nil {
				return nil, fmt.Errorf("duplicate gross leverage bound")
			}
			if c.MaxLeverage <= 0 {
				return nil, fmt.Errorf("gross leverage bound must be positive, got %f", c.MaxLeverage)
			}
			parsed.gross = &c
		case KindDollarNeutral:
			if parsed.dollar != nil {
				return nil, fmt.Errorf("duplicate dollar neutrality constraint")
			}
			if c.Tolerance < 0 {
				return nil, fmt.Errorf("dollar neutrality tolerance cannot be negative")
			}
			parsed.dollar = &c
		case KindRiskFactorNeutral:
			if c.Tolerance < 0 {
				return nil, fmt.Errorf("risk neutrality tolerance for %s cannot be negative", c.RiskFactor)
			}
			parsed.risk = append(parsed.risk, c)
		default:
			return nil, fmt.Errorf("unknown constraint kind %d", c.Kind)
		}
	}
	if parsed.gross == nil {
		return nil, fmt.Errorf("gross leverage bound is required")
	}
	if parsed.dollar == nil {
		return nil, fmt.Errorf("dollar neutrality constraint is required")
	}
	return parsed, nil
}

// sideCap converts a box bound into the magnitude cap for the asset's
// side. Longs must be bounded by [0, upper], shorts by [lower, 0].
func sideCap(box Constraint, sign float64) (float64, error) {
	if sign > 0 {
		if box.Lower != 0 || box.Upper < 0 {
			return 0, fmt.Errorf("long candidate %s needs a box bound of the form [0, max], got [%f, %f]", box.Asset, box.Lower, box.Upper)
		}
		return box.Upper, nil
	}
	if box.Upper != 0 || box.Lower > 0 {
		return 0, fmt.Errorf("short candidate %s needs a box bound of the form [-max, 0], got [%f, %f]", box.Asset, box.Lower, box.Upper)
	}
	return -box.Lower, nil
}

func riskFactorIndex(m domain.RiskLoadingMatrix, name string) int {
	for i, f := range m.Factors {
		if f == name {
			return i
		}
	}
	return -1
}

// solveStandardForm lays the problem out as min c'x s.t. Ax = b,
// x >= 0 and runs the simplex method.
//
// Columns: [0,n) magnitude per asset, [n,2n) box slack per asset,
// 2n leverage slack, 2n+1 / 2n+2 dollar band slacks, then two risk
// band slacks per risk constraint.
func solveStandardForm(
	signs []float64,
	scores []float64,
	caps []float64,
	parsed *parsedConstraints,
	riskColumns [][]float64,
) ([]float64, error) {
	n := len(signs)
	numRisk := len(riskColumns)
	cols := 2*n + 3 + 2*numRisk
	rows := n + 3 + 2*numRisk

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	c := make([]float64, cols)

	// objective: maximize sum(score_i * sign_i * magnitude_i)
	for i := 0; i < n; i++ {
		c[i] = -(signs[i] * scores[i])
	}

	// magnitude_i + slack_i = cap_i
	for i := 0; i < n; i++ {
		a.Set(i, i, 1)
		a.Set(i, n+i, 1)
		b[i] = caps[i]
	}

	// sum(magnitude_i) + slack = max gross leverage
	leverageRow := n
	for i := 0; i < n; i++ {
		a.Set(leverageRow, i, 1)
	}
	a.Set(leverageRow, 2*n, 1)
	b[leverageRow] = parsed.gross.MaxLeverage

	// -tol <= sum(sign_i * magnitude_i) <= tol as two slack rows
	dollarTol := parsed.dollar.Tolerance
	for i := 0; i < n; i++ {
		a.Set(leverageRow+1, i, signs[i])
		a.Set(leverageRow+2, i, -signs[i])
	}
	a.Set(leverageRow+1, 2*n+1, 1)
	a.Set(leverageRow+2, 2*n+2, 1)
	b[leverageRow+1] = dollarTol
	b[leverageRow+2] = dollarTol

	// -tol_f <= sum(sign_i * loading_if * magnitude_i) <= tol_f
	for f, column := range riskColumns {
		upperRow := n + 3 + 2*f
		lowerRow := upperRow + 1
		for i := 0; i < n; i++ {
			a.Set(upperRow, i, signs[i]*column[i])
			a.Set(lowerRow, i, -signs[i]*column[i])
		}
		a.Set(upperRow, 2*n+3+2*f, 1)
		a.Set(lowerRow, 2*n+3+2*f+1, 1)
		b[upperRow] = parsed.risk[f].Tolerance
		b[lowerRow] = parsed.risk[f].Tolerance
	}

	_, x, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return nil, internal.InfeasibleOptimizationError{Err: err}
	}

	return x[:n], nil
}

// verify re-checks the accepted solution against every original
// constraint. A violation means the solver's answer cannot be
// trusted, and the caller gets an infeasibility error instead of a
// bad book.
func verify(
	weights domain.TargetWeightVector,
	assets []domain.Asset,
	parsed *parsedConstraints,
	loadings domain.RiskLoadingMatrix,
) error {
	for _, asset := range assets {
		box := parsed.boxByAsset[asset]
		w := weights[asset]
		if w < box.Lower-feasibilityTol || w > box.Upper+feasibilityTol {
			return fmt.Errorf("weight %f for %s outside box [%f, %f]", w, asset, box.Lower, box.Upper)
		}
	}
	if gross := weights.GrossLeverage(); gross > parsed.gross.MaxLeverage+feasibilityTol {
		return fmt.Errorf("gross leverage %f exceeds cap %f", gross, parsed.gross.MaxLeverage)
	}
	if net := weights.NetExposure(); math.Abs(net) > parsed.dollar.Tolerance+feasibilityTol {
		return fmt.Errorf("net exposure %f exceeds dollar neutrality tolerance %f", net, parsed.dollar.Tolerance)
	}
	for _, rc := range parsed.risk {
		idx := riskFactorIndex(loadings, rc.RiskFactor)
		if idx < 0 {
			return fmt.Errorf("risk factor %s missing from loading matrix", rc.RiskFactor)
		}
		exposure := weights.FactorExposure(loadings, idx)
		if math.Abs(exposure) > rc.Tolerance+feasibilityTol {
			return fmt.Errorf("exposure %f to %s exceeds tolerance %f", exposure, rc.RiskFactor, rc.Tolerance)
		}
	}
	return nil
}
