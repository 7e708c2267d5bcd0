// Package pricing derives suggested sale prices for the assembly quoting
// flow. Margin is applied over the sale price, not the cost:
//
//	price = cost / (1 - margin/100)
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// SuggestedPrice returns the sale price for a cost basis and a profit-margin
// percentage. Guards:
//   - cost <= 0 returns 0 regardless of margin
//   - margin >= 100 returns 0 (the formula would divide by zero or go negative)
//   - margin < 0 is treated as 0 (price equals cost)
func SuggestedPrice(cost, marginPercent float64) float64 {
	if cost <= 0 {
		return 0
	}
	if marginPercent >= 100 {
		return 0
	}
	if marginPercent < 0 {
		marginPercent = 0
	}

	c := decimal.NewFromFloat(cost)
	m := decimal.NewFromFloat(marginPercent).Div(hundred)
	price, _ := c.Div(decimal.NewFromInt(1).Sub(m)).Round(2).Float64()
	return price
}
