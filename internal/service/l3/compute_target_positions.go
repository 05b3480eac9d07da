package l3_service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"longshort/internal/domain"
)

type ComputeTargetPositionsInput struct {
	PriceMap       map[domain.Asset]decimal.Decimal
	PortfolioValue decimal.Decimal
	Weights        domain.TargetWeightVector
}

// ComputeTargetPositions converts the optimizer's weight vector into
// signed dollar-sized positions against the portfolio's net asset
// value. Short weights produce negative quantities. Dollar amounts
// round to 3 places so identical inputs produce identical books.
func ComputeTargetPositions(in ComputeTargetPositionsInput) (*domain.Portfolio, error) {
	if in.PortfolioValue.LessThan(decimal.NewFromFloat(0.001)) {
		return nil, fmt.Errorf("cannot compute target positions with portfolio value %s", in.PortfolioValue.String())
	}

	targetPortfolio := domain.NewPortfolio()
	for asset, weight := range in.Weights {
		if weight == 0 {
			continue
		}
		price, ok := in.PriceMap[asset]
		if !ok {
			return nil, fmt.Errorf("price map does not have %s", asset)
		}

		dollarsOfAsset := in.PortfolioValue.Mul(decimal.NewFromFloat(weight)).Round(3)
		quantity := dollarsOfAsset.Div(price)

		targetPortfolio.Positions[asset] = &domain.Position{
			Asset:         asset,
			ExactQuantity: quantity,
		}
	}

	return targetPortfolio, nil
}

// ProposeTrades diffs the current book against the target book and
// returns the signed quantity deltas needed to converge.
func ProposeTrades(current, target *domain.Portfolio, priceMap map[domain.Asset]decimal.Decimal) ([]domain.ProposedTrade, error) {
	trades := []domain.ProposedTrade{}

	seen := domain.AssetSet{}
	for _, asset := range target.HeldAssets() {
		seen.Add(asset)
		targetQuantity := target.Positions[asset].ExactQuantity
		currentQuantity := decimal.Zero
		if position, ok := current.Positions[asset]; ok {
			currentQuantity = position.ExactQuantity
		}

		delta := targetQuantity.Sub(currentQuantity)
		if delta.IsZero() {
			continue
		}
		price, ok := priceMap[asset]
		if !ok {
			return nil, fmt.Errorf("price map does not have %s", asset)
		}
		trades = append(trades, domain.ProposedTrade{
			Asset:         asset,
			ExactQuantity: delta,
			ExpectedPrice: price,
		})
	}

	// flatten anything held that the target no longer wants
	for _, asset := range current.HeldAssets() {
		if seen.Contains(asset) {
			continue
		}
		quantity := current.Positions[asset].ExactQuantity
		if quantity.IsZero() {
			continue
		}
		price, ok := priceMap[asset]
		if !ok {
			return nil, fmt.Errorf("price map does not have %s", asset)
		}
		trades = append(trades, domain.ProposedTrade{
			Asset:         asset,
			ExactQuantity: quantity.Neg(),
			ExpectedPrice: price,
		})
	}

	return trades, nil
}
