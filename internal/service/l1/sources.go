package l1_service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"longshort/internal/domain"
)

// Data-source contracts the pipeline consumes. Everything upstream of
// these interfaces (vendor feeds, ingestion, storage) lives outside
// this repo.

// FieldSource returns one raw fundamental/market field across the
// universe for a rebalance date. A nil value means the field is
// undefined for that asset on that date.
type FieldSource interface {
	FieldValues(ctx context.Context, date time.Time, field string) (map[domain.Asset]*float64, error)
}

// UniverseSource returns the eligible asset set for a rebalance date
// plus the liquidity metric used by the optional dollar-volume
// screen.
type UniverseSource interface {
	GetUniverse(ctx context.Context, date time.Time) (domain.Universe, error)
}

// RiskLoadingSource returns the risk model's loading matrix for a
// rebalance date over its fixed, named factor set.
type RiskLoadingSource interface {
	GetRiskLoadings(ctx context.Context, date time.Time) (domain.RiskLoadingMatrix, error)
}

// PriceSource returns per-asset prices used to convert target weights
// into dollar positions.
type PriceSource interface {
	GetPrices(ctx context.Context, date time.Time) (map[domain.Asset]decimal.Decimal, error)
}
