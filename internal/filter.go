package internal

import (
	"longshort/internal/domain"
)

// FilterUniverse intersects the externally supplied eligibility set
// with the strategy's liquidity predicate. Pure set intersection - no
// ranking happens here. A nil minDollarVolume disables the liquidity
// screen. Assets without a recorded dollar volume fail the screen
// when it is enabled.
func FilterUniverse(universe domain.Universe, minDollarVolume *float64) domain.Universe {
	if minDollarVolume == nil {
		return universe
	}

	eligible := domain.AssetSet{}
	for asset := range universe.Eligible {
		volume, ok := universe.AvgDollarVolume[asset]
		if ok && volume >= *minDollarVolume {
			eligible.Add(asset)
		}
	}

	return domain.Universe{
		Date:            universe.Date,
		Eligible:        eligible,
		AvgDollarVolume: universe.AvgDollarVolume,
	}
}
