package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vasiliy-maslov/craftcart/internal/money"
)

// Product is a catalog entry. Products are created once at startup and never
// modified; cart items and orders hold pointers to the same value.
type Product struct {
	ID    int
	Name  string
	Price decimal.Decimal
}

func (p Product) String() string {
	return fmt.Sprintf("Product ID: %d | Name: %s | Price: %s", p.ID, p.Name, money.Format(p.Price))
}

// DefaultProducts is the seed catalog used when no catalog file is configured.
func DefaultProducts() []Product {
	return []Product{
		{ID: 101, Name: "wooden craft", Price: decimal.NewFromInt(350)},
		{ID: 102, Name: "handmade craft", Price: decimal.NewFromInt(220)},
		{ID: 103, Name: "handloom", Price: decimal.NewFromInt(499)},
		{ID: 104, Name: "paintings", Price: decimal.NewFromInt(299)},
	}
}
