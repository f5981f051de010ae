package mysql

import "github.com/shopspring/decimal"

// floatToMoney converts an engine-computed aggregate back to a 2-decimal amount.
func floatToMoney(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}
