package cart

import (
	"errors"
	"fmt"
	"math"

	"github.com/vasiliy-maslov/craftcart/internal/catalog"
)

var (
	ErrItemNotInCart   = errors.New("item not found in cart")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNilProduct      = errors.New("product is required")
)

// Cart is the pre-checkout list of items for one session. Items keep the order
// in which products were first added.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add puts qty units of p into the cart. If the product is already present its
// quantity is increased and merged is true; otherwise a new line is appended.
// The returned Item is the line after the change.
func (c *Cart) Add(p *catalog.Product, qty int) (item Item, merged bool, err error) {
	if p == nil {
		return Item{}, false, ErrNilProduct
	}
	if qty < 1 {
		return Item{}, false, fmt.Errorf("cart: add product %d with quantity %d: %w", p.ID, qty, ErrInvalidQuantity)
	}

	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			if c.items[i].Quantity > math.MaxInt-qty {
				return c.items[i], true, fmt.Errorf("cart: product %d already has %d units, cannot add %d: %w", p.ID, c.items[i].Quantity, qty, ErrInvalidQuantity)
			}
			c.items[i].Quantity += qty
			return c.items[i], true, nil
		}
	}

	c.items = append(c.items, Item{Product: p, Quantity: qty})
	return c.items[len(c.items)-1], false, nil
}

// Remove drops the first line holding productID.
func (c *Cart) Remove(productID int) error {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotInCart
}

// Items returns a copy of the cart lines. Later changes to the cart are not
// visible through the returned slice.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Clear() {
	c.items = nil
}
