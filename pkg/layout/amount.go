package layout

import "github.com/shopspring/decimal"

// Amount returns quantity × rate fixed to two decimal places.
func Amount(qty, rate decimal.Decimal) string {
	return qty.Mul(rate).StringFixed(2)
}

// SumAmounts totals quantity × rate pairs, fixed to two decimal places.
// An empty set totals "0.00".
func SumAmounts(pairs [][2]decimal.Decimal) string {
	total := decimal.Zero
	for _, p := range pairs {
		total = total.Add(p[0].Mul(p[1]))
	}
	return total.StringFixed(2)
}
