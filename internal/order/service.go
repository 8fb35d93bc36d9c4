package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/craftcart/internal/cart"
)

type Service interface {
	PlaceOrder(ctx context.Context, customerName string, items []cart.Item) (*Order, error)
	GetOrderByID(ctx context.Context, id int) (*Order, error)
}

type service struct {
	orderRepo Repository
	now       func() time.Time
}

// NewService wires the order service. now is the clock used for order dates
// and status; nil means time.Now.
func NewService(orderRepo Repository, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		orderRepo: orderRepo,
		now:       now,
	}
}

func (s *service) PlaceOrder(ctx context.Context, customerName string, items []cart.Item) (*Order, error) {
	if len(items) == 0 {
		log.Debug().Str("customer", customerName).Msg("service: attempt to place order with no items")
		return nil, ErrEmptyOrder
	}

	o, err := NewOrder(customerName, items, s.now())
	if err != nil {
		return nil, fmt.Errorf("service: failed to build order: %w", err)
	}

	if _, err := s.orderRepo.CreateOrder(ctx, o); err != nil {
		log.Error().Err(err).Msg("service: failed to create order in repository")
		return nil, fmt.Errorf("service: failed to create order: %w", err)
	}

	log.Info().
		Int("order_id", o.ID).
		Str("customer", o.CustomerName).
		Stringer("total", o.TotalAmount).
		Stringer("discount_rate", o.DiscountRate).
		Stringer("final", o.FinalAmount).
		Msg("service: order placed")

	return o, nil
}

func (s *service) GetOrderByID(ctx context.Context, id int) (*Order, error) {
	o, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			log.Debug().Int("order_id", id).Msg("service: order not found by id")
			return nil, ErrOrderNotFound
		}
		log.Error().Err(err).Int("order_id", id).Msg("service: failed to fetch order by id in repository")
		return nil, fmt.Errorf("service: failed to fetch order by id: %w", err)
	}

	o.RefreshStatus(s.now())
	return o, nil
}
