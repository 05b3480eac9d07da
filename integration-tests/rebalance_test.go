package integration_tests

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"longshort/internal"
	"longshort/internal/domain"
	l1_service "longshort/internal/service/l1"
	l2_service "longshort/internal/service/l2"
	l3_service "longshort/internal/service/l3"
)

func newStack(t *testing.T, config *internal.StrategyConfig) (l3_service.RebalanceService, *l1_service.CSVMarketData) {
	marketData := l1_service.NewCSVMarketData("testdata")
	factorService := l2_service.NewFactorService(marketData)
	rebalanceService, err := l3_service.NewRebalanceService(config, factorService, marketData, marketData)
	require.NoError(t, err)
	return rebalanceService, marketData
}

func strategyConfig() *internal.StrategyConfig {
	return &internal.StrategyConfig{
		Name:             "value_test",
		TotalPositions:   4,
		MaxGrossLeverage: 1.0,
		Cadence:          internal.CadenceDaily,
		Factors: []internal.FactorConfig{
			{
				Name:          "value",
				Expression:    `field("ebit") / field("enterprise_value")`,
				Weight:        1,
				WinsorizeLow:  0.15,
				WinsorizeHigh: 0.85,
			},
		},
	}
}

func TestRebalancePipeline(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	t.Run("full cycle from csv to weights", func(t *testing.T) {
		service, _ := newStack(t, strategyConfig())

		result, err := service.Run(ctx, date)
		require.NoError(t, err)

		// highest ebit/ev on top, lowest shorted
		require.Equal(t, []domain.Asset{"ALFA", "BRVO"}, result.Diagnostics.Candidates.Longs)
		require.Equal(t, []domain.Asset{"GOLF", "HOTL"}, result.Diagnostics.Candidates.Shorts)

		require.LessOrEqual(t, result.Weights.GrossLeverage(), 1.0+1e-8)
		require.InDelta(t, 1.0, result.Weights.GrossLeverage(), 1e-6)
		require.LessOrEqual(t, math.Abs(result.Weights.NetExposure()), 1e-6+1e-8)

		for asset, w := range result.Weights {
			require.True(t, result.Diagnostics.Candidates.Contains(asset))
			if result.Diagnostics.Candidates.IsLong(asset) {
				require.GreaterOrEqual(t, w, -1e-8)
				require.LessOrEqual(t, w, 0.5+1e-8)
			} else {
				require.LessOrEqual(t, w, 1e-8)
				require.GreaterOrEqual(t, w, -0.5-1e-8)
			}
		}
	})

	t.Run("run is deterministic", func(t *testing.T) {
		service, _ := newStack(t, strategyConfig())

		first, err := service.Run(ctx, date)
		require.NoError(t, err)
		second, err := service.Run(ctx, date)
		require.NoError(t, err)

		require.Equal(t, first.Weights, second.Weights)
		require.Equal(t, first.Diagnostics.Candidates, second.Diagnostics.Candidates)
		require.NotEqual(t, first.RunID, second.RunID)
	})

	t.Run("liquidity screen narrows the universe", func(t *testing.T) {
		config := strategyConfig()
		config.MinDollarVolume = floatPointer(4.5e7)
		service, _ := newStack(t, config)

		result, err := service.Run(ctx, date)
		require.NoError(t, err)

		// only the five most liquid names survive the screen
		require.Equal(t, []domain.Asset{"ALFA", "BRVO"}, result.Diagnostics.Candidates.Longs)
		require.Equal(t, []domain.Asset{"DLTA", "ECHO"}, result.Diagnostics.Candidates.Shorts)
	})

	t.Run("date without data fails with a tagged error", func(t *testing.T) {
		service, _ := newStack(t, strategyConfig())

		_, err := service.Run(ctx, time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC))
		require.ErrorAs(t, err, &internal.MissingDataError{})
	})

	t.Run("weights flow through to dollar positions", func(t *testing.T) {
		service, marketData := newStack(t, strategyConfig())

		result, err := service.Run(ctx, date)
		require.NoError(t, err)

		prices, err := marketData.GetPrices(ctx, date)
		require.NoError(t, err)

		target, err := l3_service.ComputeTargetPositions(l3_service.ComputeTargetPositionsInput{
			PriceMap:       prices,
			PortfolioValue: decimal.NewFromInt(1_000_000),
			Weights:        result.Weights,
		})
		require.NoError(t, err)

		for asset, position := range target.Positions {
			if result.Diagnostics.Candidates.IsLong(asset) {
				require.True(t, position.ExactQuantity.IsPositive())
			} else {
				require.True(t, position.ExactQuantity.IsNegative())
			}
		}

		trades, err := l3_service.ProposeTrades(domain.NewPortfolio(), target, prices)
		require.NoError(t, err)
		require.Len(t, trades, len(target.Positions))
	})
}

func floatPointer(f float64) *float64 {
	return &f
}
