package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"longshort/internal/util"
)

const (
	CadenceDaily   = "daily"
	CadenceMonthly = "monthly"

	// defaults applied when a strategy file leaves them unset
	defaultDollarNeutralTolerance = 1e-6
	defaultRiskFactorTolerance    = 0.05
)

// FactorConfig defines one input factor: how to compute it, how hard
// to clip its tails, and how much of the composite it contributes.
type FactorConfig struct {
	Name          string  `json:"name"`
	Expression    string  `json:"expression"`
	Weight        float64 `json:"weight"`
	WinsorizeLow  float64 `json:"winsorizeLow"`
	WinsorizeHigh float64 `json:"winsorizeHigh"`
}

// StrategyConfig is the static per-strategy configuration. Validated
// once at construction; a strategy with an invalid config never gets
// to run a cycle.
type StrategyConfig struct {
	Name             string  `json:"name"`
	TotalPositions   int     `json:"totalPositions"`
	MaxGrossLeverage float64 `json:"maxGrossLeverage"`

	// box bound caps; zero means the 2/TotalPositions default
	MaxLongPositionSize  float64 `json:"maxLongPositionSize"`
	MaxShortPositionSize float64 `json:"maxShortPositionSize"`

	// nil means the package default; 0 means strict neutrality
	DollarNeutralTolerance *float64 `json:"dollarNeutralTolerance"`
	RiskFactorTolerance    *float64 `json:"riskFactorTolerance"`

	// liquidity screen; nil disables it
	MinDollarVolume *float64 `json:"minDollarVolume"`

	// consumed by the scheduling layer, not by the pipeline
	Cadence string `json:"cadence"`

	Factors []FactorConfig `json:"factors"`
}

func LoadStrategyConfig(path string) (*StrategyConfig, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read strategy config %s: %w", path, err)
	}

	config := StrategyConfig{}
	err = json.Unmarshal(contents, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse strategy config %s: %w", path, err)
	}

	err = config.Validate()
	if err != nil {
		return nil, err
	}

	return &config, nil
}

func (c StrategyConfig) Validate() error {
	if c.TotalPositions < 2 {
		return ConfigurationError{Field: "totalPositions", Reason: fmt.Sprintf("must be at least 2, got %d", c.TotalPositions)}
	}
	if c.TotalPositions%2 != 0 {
		return ConfigurationError{Field: "totalPositions", Reason: fmt.Sprintf("must be even, got %d", c.TotalPositions)}
	}
	if c.MaxGrossLeverage <= 0 {
		return ConfigurationError{Field: "maxGrossLeverage", Reason: fmt.Sprintf("must be positive, got %f", c.MaxGrossLeverage)}
	}
	if c.MaxLongPositionSize < 0 || c.MaxShortPositionSize < 0 {
		return ConfigurationError{Field: "maxLongPositionSize", Reason: "position size caps cannot be negative"}
	}
	if c.DollarNeutralTolerance != nil && *c.DollarNeutralTolerance < 0 {
		return ConfigurationError{Field: "dollarNeutralTolerance", Reason: "cannot be negative"}
	}
	if c.RiskFactorTolerance != nil && *c.RiskFactorTolerance < 0 {
		return ConfigurationError{Field: "riskFactorTolerance", Reason: "cannot be negative"}
	}
	if c.MinDollarVolume != nil && *c.MinDollarVolume < 0 {
		return ConfigurationError{Field: "minDollarVolume", Reason: "cannot be negative"}
	}
	if c.Cadence != "" && c.Cadence != CadenceDaily && c.Cadence != CadenceMonthly {
		return ConfigurationError{Field: "cadence", Reason: fmt.Sprintf("must be %q or %q, got %q", CadenceDaily, CadenceMonthly, c.Cadence)}
	}
	if len(c.Factors) == 0 {
		return ConfigurationError{Field: "factors", Reason: "strategy needs at least one factor"}
	}
	for _, f := range c.Factors {
		if f.Name == "" {
			return ConfigurationError{Field: "factors", Reason: "factor name cannot be empty"}
		}
		if f.Expression == "" {
			return ConfigurationError{Field: "factors", Reason: fmt.Sprintf("factor %s has no expression", f.Name)}
		}
		if f.WinsorizeLow <= 0 || f.WinsorizeHigh >= 1 || f.WinsorizeLow >= f.WinsorizeHigh {
			return ConfigurationError{
				Field:  "factors",
				Reason: fmt.Sprintf("factor %s winsorize bounds must satisfy 0 < low < high < 1, got (%f, %f)", f.Name, f.WinsorizeLow, f.WinsorizeHigh),
			}
		}
	}
	return nil
}

// PositionsPerSide is K: the size of each candidate pool.
func (c StrategyConfig) PositionsPerSide() int {
	return c.TotalPositions / 2
}

// LongCap is the per-asset upper box bound for long positions.
func (c StrategyConfig) LongCap() float64 {
	if c.MaxLongPositionSize > 0 {
		return c.MaxLongPositionSize
	}
	return 2.0 / float64(c.TotalPositions)
}

// ShortCap is the per-asset magnitude bound for short positions.
func (c StrategyConfig) ShortCap() float64 {
	if c.MaxShortPositionSize > 0 {
		return c.MaxShortPositionSize
	}
	return 2.0 / float64(c.TotalPositions)
}

func (c StrategyConfig) NeutralityTolerance() float64 {
	if c.DollarNeutralTolerance != nil {
		return *c.DollarNeutralTolerance
	}
	return defaultDollarNeutralTolerance
}

// RebalanceDue reports whether the strategy's cadence calls for a
// rebalance on the given date. An unset cadence means every weekday.
func (c StrategyConfig) RebalanceDue(date time.Time) bool {
	switch c.Cadence {
	case CadenceMonthly:
		return util.IsMonthStart(date)
	default:
		return util.IsWeekday(date)
	}
}

func (c StrategyConfig) RiskTolerance() float64 {
	if c.RiskFactorTolerance != nil {
		return *c.RiskFactorTolerance
	}
	return defaultRiskFactorTolerance
}
