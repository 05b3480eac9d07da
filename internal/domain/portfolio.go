package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Portfolio is a dollar-denominated book of signed positions. Short
// positions carry negative quantity.
type Portfolio struct {
	Positions map[Asset]*Position
	Cash      *decimal.Decimal
}

func NewPortfolio() *Portfolio {
	d := decimal.Zero
	return &Portfolio{
		Positions: map[Asset]*Position{},
		Cash:      &d,
	}
}

func (p Portfolio) HeldAssets() []Asset {
	assets := []Asset{}
	for asset := range p.Positions {
		assets = append(assets, asset)
	}
	SortAssets(assets)
	return assets
}

func (p Portfolio) DeepCopy() *Portfolio {
	newPortfolio := &Portfolio{
		Cash:      p.Cash,
		Positions: map[Asset]*Position{},
	}
	for asset, position := range p.Positions {
		newPortfolio.Positions[asset] = position.DeepCopy()
	}

	return newPortfolio
}

// TotalValue prices every position plus cash. Long and short legs
// net: a short position contributes negative value.
func (p Portfolio) TotalValue(priceMap map[Asset]decimal.Decimal) (decimal.Decimal, error) {
	totalValue := *p.Cash
	for asset, position := range p.Positions {
		price, ok := priceMap[asset]
		if !ok {
			return decimal.Zero, fmt.Errorf("cannot compute portfolio total value: price map missing %s", asset)
		}
		totalValue = totalValue.Add(position.ExactQuantity.Mul(price))
	}

	return totalValue, nil
}

type Position struct {
	Asset         Asset
	ExactQuantity decimal.Decimal
}

func (p Position) DeepCopy() *Position {
	return &Position{
		Asset:         p.Asset,
		ExactQuantity: p.ExactQuantity,
	}
}

// ProposedTrade is the signed quantity delta that moves the current
// book toward the target book for one asset.
type ProposedTrade struct {
	Asset         Asset
	ExactQuantity decimal.Decimal
	ExpectedPrice decimal.Decimal
}

func (p ProposedTrade) ExpectedAmount() decimal.Decimal {
	return p.ExactQuantity.Mul(p.ExpectedPrice).Abs()
}
