package cart

import (
	"github.com/shopspring/decimal"
	"github.com/vasiliy-maslov/craftcart/internal/catalog"
)

// Item pairs a catalog product with the quantity being bought.
type Item struct {
	Product  *catalog.Product
	Quantity int
}

func (i Item) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
