package domain

import "time"

// FactorSnapshot holds one factor's raw or transformed values for a
// single rebalance date. A nil value means the factor is undefined
// for that asset on that date - downstream stages must not invent a
// number for it. Snapshots are never mutated after construction;
// every transform returns a new one.
type FactorSnapshot struct {
	Name   string
	Date   time.Time
	Values map[Asset]*float64
}

func NewFactorSnapshot(name string, date time.Time) FactorSnapshot {
	return FactorSnapshot{
		Name:   name,
		Date:   date,
		Values: map[Asset]*float64{},
	}
}

// DefinedValues returns the assets with a defined value sorted by
// symbol, plus the values in the same order.
func (f FactorSnapshot) DefinedValues() ([]Asset, []float64) {
	assets := make([]Asset, 0, len(f.Values))
	for asset, v := range f.Values {
		if v != nil {
			assets = append(assets, asset)
		}
	}
	SortAssets(assets)
	values := make([]float64, len(assets))
	for i, asset := range assets {
		values[i] = *f.Values[asset]
	}
	return assets, values
}

// WithValues returns a copy of the snapshot metadata carrying the
// given values.
func (f FactorSnapshot) WithValues(values map[Asset]*float64) FactorSnapshot {
	return FactorSnapshot{
		Name:   f.Name,
		Date:   f.Date,
		Values: values,
	}
}

// CompositeScore is the blended ranking signal per asset. Higher is
// more attractive long, lower more attractive short. Assets missing
// any input factor are absent from the map entirely.
type CompositeScore map[Asset]float64
