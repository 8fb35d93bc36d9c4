package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vasiliy-maslov/craftcart/internal/cart"
)

type OrderStatus string

const (
	StatusPlaced         OrderStatus = "Placed"
	StatusShipped        OrderStatus = "Shipped"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

func (os OrderStatus) String() string {
	return string(os)
}

// DeliveryLeadDays is the fixed gap between the order date and the ETA.
const DeliveryLeadDays = 5

var (
	ErrEmptyOrder    = errors.New("order must contain at least one item")
	ErrInvalidItem   = errors.New("invalid order item")
	ErrOrderNotFound = errors.New("order not found")
)

// Order is a placed checkout. Everything except Status is fixed at creation;
// Status is recomputed from the clock whenever the order is read.
type Order struct {
	ID           int
	CustomerName string
	Items        []cart.Item
	Status       OrderStatus
	OrderDate    time.Time
	DeliveryDate time.Time
	TotalAmount  decimal.Decimal
	DiscountRate decimal.Decimal
	FinalAmount  decimal.Decimal
}

// NewOrder builds an order from a copy of items. The ID is left zero; the
// repository assigns it on CreateOrder.
func NewOrder(customerName string, items []cart.Item, now time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	snapshot := make([]cart.Item, 0, len(items))
	for _, item := range items {
		if item.Product == nil {
			return nil, fmt.Errorf("order: item without product: %w", ErrInvalidItem)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("order: quantity for product %d must be greater than zero: %w", item.Product.ID, ErrInvalidItem)
		}
		if item.Product.Price.IsNegative() {
			return nil, fmt.Errorf("order: price for product %d cannot be negative: %w", item.Product.ID, ErrInvalidItem)
		}
		snapshot = append(snapshot, item)
	}

	orderDate := dateOf(now)
	o := &Order{
		CustomerName: customerName,
		Items:        snapshot,
		Status:       StatusPlaced,
		OrderDate:    orderDate,
		DeliveryDate: orderDate.AddDate(0, 0, DeliveryLeadDays),
	}
	o.calculateTotals()

	return o, nil
}

func (o *Order) calculateTotals() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}

	o.TotalAmount = total
	o.DiscountRate = DiscountRate(total)
	o.FinalAmount = total.Sub(total.Mul(o.DiscountRate))
}

// RefreshStatus recomputes Status for the given moment and returns it.
func (o *Order) RefreshStatus(now time.Time) OrderStatus {
	o.Status = StatusAfter(DaysBetween(o.OrderDate, now))
	return o.Status
}
