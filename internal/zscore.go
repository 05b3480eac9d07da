package internal

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"longshort/internal/domain"
)

// ZScore standardizes the snapshot's defined values to zero mean and
// unit variance over the current cross-section. Undefined values pass
// through untouched.
//
// If the cross-section has zero variance there is no meaningful
// ranking information in the factor: rather than dividing by zero,
// every defined value becomes 0 and a DegenerateNormalizationError is
// returned alongside the snapshot. Callers treat it as a warning and
// keep the cycle going.
func ZScore(snapshot domain.FactorSnapshot) (domain.FactorSnapshot, error) {
	assets, values := snapshot.DefinedValues()

	out := make(map[domain.Asset]*float64, len(snapshot.Values))
	for asset, v := range snapshot.Values {
		if v == nil {
			out[asset] = nil
		}
	}

	if len(values) == 0 {
		return snapshot.WithValues(out), nil
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return domain.FactorSnapshot{}, fmt.Errorf("failed to compute mean for %s: %w", snapshot.Name, err)
	}
	stdev, err := stats.StandardDeviationPopulation(values)
	if err != nil {
		return domain.FactorSnapshot{}, fmt.Errorf("failed to compute stdev for %s: %w", snapshot.Name, err)
	}

	if stdev == 0 {
		for _, asset := range assets {
			out[asset] = floatPointer(0)
		}
		return snapshot.WithValues(out), DegenerateNormalizationError{Factor: snapshot.Name}
	}

	for i, asset := range assets {
		out[asset] = floatPointer((values[i] - mean) / stdev)
	}

	return snapshot.WithValues(out), nil
}
