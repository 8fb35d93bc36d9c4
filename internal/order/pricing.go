package order

import "github.com/shopspring/decimal"

var (
	threshold30000 = decimal.NewFromInt(30000)
	threshold20000 = decimal.NewFromInt(20000)
	threshold10000 = decimal.NewFromInt(10000)
	threshold9000  = decimal.NewFromInt(9000)
	threshold5000  = decimal.NewFromInt(5000)
	threshold4000  = decimal.NewFromInt(4000)
	threshold2000  = decimal.NewFromInt(2000)

	rateHalf    = decimal.RequireFromString("0.50")
	rateThirty  = decimal.RequireFromString("0.30")
	rateTwenty  = decimal.RequireFromString("0.20")
	rateFifteen = decimal.RequireFromString("0.15")
	rateTen     = decimal.RequireFromString("0.10")
)

// DiscountRate maps an order total to its discount bracket. Brackets are
// checked top to bottom and the first match wins, so totals in the open
// ranges (9000, 10000) and (20000, 30000) land in the 15% bracket.
func DiscountRate(total decimal.Decimal) decimal.Decimal {
	switch {
	case total.GreaterThanOrEqual(threshold30000):
		return rateHalf
	case total.GreaterThanOrEqual(threshold10000) && total.LessThanOrEqual(threshold20000):
		return rateThirty
	case total.GreaterThanOrEqual(threshold5000) && total.LessThanOrEqual(threshold9000):
		return rateTwenty
	case total.GreaterThanOrEqual(threshold4000):
		return rateFifteen
	case total.GreaterThanOrEqual(threshold2000):
		return rateTen
	default:
		return decimal.Zero
	}
}
