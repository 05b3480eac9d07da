package internal

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"longshort/internal/domain"
)

// Winsorize clamps every defined value of the snapshot into the
// [pLow, pHigh] percentile band computed over the defined values.
// Undefined values pass through untouched. Percentiles use the
// nearest-rank method so the band endpoints are actual members of the
// cross-section; clamping to members means re-clipping an
// already-clipped snapshot with the same bounds is a no-op. The
// cross-section is sorted first, so the result does not depend on map
// iteration order.
func Winsorize(snapshot domain.FactorSnapshot, pLow, pHigh float64) (domain.FactorSnapshot, error) {
	if pLow <= 0 || pHigh >= 1 || pLow >= pHigh {
		return domain.FactorSnapshot{}, fmt.Errorf("winsorize bounds must satisfy 0 < low < high < 1, got (%f, %f)", pLow, pHigh)
	}

	assets, values := snapshot.DefinedValues()
	if len(values) == 0 {
		return snapshot.WithValues(map[domain.Asset]*float64{}), nil
	}

	lower, err := stats.PercentileNearestRank(values, pLow*100)
	if err != nil {
		return domain.FactorSnapshot{}, fmt.Errorf("failed to compute %f percentile for %s: %w", pLow, snapshot.Name, err)
	}
	upper, err := stats.PercentileNearestRank(values, pHigh*100)
	if err != nil {
		return domain.FactorSnapshot{}, fmt.Errorf("failed to compute %f percentile for %s: %w", pHigh, snapshot.Name, err)
	}

	clipped := make(map[domain.Asset]*float64, len(snapshot.Values))
	for asset, v := range snapshot.Values {
		if v == nil {
			clipped[asset] = nil
		}
	}
	for i, asset := range assets {
		v := values[i]
		if v < lower {
			v = lower
		}
		if v > upper {
			v = upper
		}
		clipped[asset] = floatPointer(v)
	}

	return snapshot.WithValues(clipped), nil
}

func floatPointer(f float64) *float64 {
	return &f
}
