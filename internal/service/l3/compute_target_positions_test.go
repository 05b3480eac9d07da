package l3_service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"longshort/internal/domain"
)

func TestComputeTargetPositions(t *testing.T) {
	priceMap := map[domain.Asset]decimal.Decimal{
		"AAPL": decimal.NewFromInt(200),
		"MSFT": decimal.NewFromInt(400),
	}

	t.Run("weights convert to signed quantities", func(t *testing.T) {
		target, err := ComputeTargetPositions(ComputeTargetPositionsInput{
			PriceMap:       priceMap,
			PortfolioValue: decimal.NewFromInt(100_000),
			Weights: domain.TargetWeightVector{
				"AAPL": 0.5,
				"MSFT": -0.5,
			},
		})
		require.NoError(t, err)

		// 50k long AAPL at 200, 50k short MSFT at 400
		require.True(t, decimal.NewFromInt(250).Equal(target.Positions["AAPL"].ExactQuantity))
		require.True(t, decimal.NewFromInt(-125).Equal(target.Positions["MSFT"].ExactQuantity))
	})

	t.Run("zero weights produce no position", func(t *testing.T) {
		target, err := ComputeTargetPositions(ComputeTargetPositionsInput{
			PriceMap:       priceMap,
			PortfolioValue: decimal.NewFromInt(100_000),
			Weights: domain.TargetWeightVector{
				"AAPL": 0.5,
				"MSFT": 0,
			},
		})
		require.NoError(t, err)

		require.NotContains(t, target.Positions, domain.Asset("MSFT"))
	})

	t.Run("missing price fails", func(t *testing.T) {
		_, err := ComputeTargetPositions(ComputeTargetPositionsInput{
			PriceMap:       priceMap,
			PortfolioValue: decimal.NewFromInt(100_000),
			Weights: domain.TargetWeightVector{
				"TSLA": 0.5,
			},
		})
		require.Error(t, err)
	})

	t.Run("worthless portfolio fails", func(t *testing.T) {
		_, err := ComputeTargetPositions(ComputeTargetPositionsInput{
			PriceMap:       priceMap,
			PortfolioValue: decimal.Zero,
			Weights:        domain.TargetWeightVector{"AAPL": 0.5},
		})
		require.Error(t, err)
	})
}

func TestProposeTrades(t *testing.T) {
	priceMap := map[domain.Asset]decimal.Decimal{
		"AAPL": decimal.NewFromInt(200),
		"MSFT": decimal.NewFromInt(400),
		"TSLA": decimal.NewFromInt(300),
	}

	t.Run("diffs current against target", func(t *testing.T) {
		current := domain.NewPortfolio()
		current.Positions["AAPL"] = &domain.Position{Asset: "AAPL", ExactQuantity: decimal.NewFromInt(100)}
		current.Positions["TSLA"] = &domain.Position{Asset: "TSLA", ExactQuantity: decimal.NewFromInt(-10)}

		target := domain.NewPortfolio()
		target.Positions["AAPL"] = &domain.Position{Asset: "AAPL", ExactQuantity: decimal.NewFromInt(250)}
		target.Positions["MSFT"] = &domain.Position{Asset: "MSFT", ExactQuantity: decimal.NewFromInt(-125)}

		trades, err := ProposeTrades(current, target, priceMap)
		require.NoError(t, err)
		require.Len(t, trades, 3)

		byAsset := map[domain.Asset]domain.ProposedTrade{}
		for _, trade := range trades {
			byAsset[trade.Asset] = trade
		}

		require.True(t, decimal.NewFromInt(150).Equal(byAsset["AAPL"].ExactQuantity))
		require.True(t, decimal.NewFromInt(-125).Equal(byAsset["MSFT"].ExactQuantity))
		// TSLA is flattened: buying back the 10 share short
		require.True(t, decimal.NewFromInt(10).Equal(byAsset["TSLA"].ExactQuantity))
	})

	t.Run("identical books trade nothing", func(t *testing.T) {
		current := domain.NewPortfolio()
		current.Positions["AAPL"] = &domain.Position{Asset: "AAPL", ExactQuantity: decimal.NewFromInt(100)}

		target := domain.NewPortfolio()
		target.Positions["AAPL"] = &domain.Position{Asset: "AAPL", ExactQuantity: decimal.NewFromInt(100)}

		trades, err := ProposeTrades(current, target, priceMap)
		require.NoError(t, err)
		require.Empty(t, trades)
	})
}
