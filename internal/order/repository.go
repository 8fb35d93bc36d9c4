package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// FirstOrderID is the id given to the first order of a process.
const FirstOrderID = 5000

var ErrOrderExists = errors.New("order already has an id")

type Repository interface {
	CreateOrder(ctx context.Context, order *Order) (int, error)
	GetOrderByID(ctx context.Context, id int) (*Order, error)
}

type memoryRepository struct {
	orders map[int]*Order
	nextID int
}

// NewRepository returns an in-memory order store. Orders live for the
// lifetime of the process only.
func NewRepository() Repository {
	return &memoryRepository{
		orders: make(map[int]*Order),
		nextID: FirstOrderID,
	}
}

func (r *memoryRepository) CreateOrder(_ context.Context, orderInput *Order) (int, error) {
	if orderInput.ID != 0 {
		return 0, fmt.Errorf("repository: order %d: %w", orderInput.ID, ErrOrderExists)
	}

	orderInput.ID = r.nextID
	r.orders[orderInput.ID] = orderInput
	r.nextID++

	log.Debug().Int("order_id", orderInput.ID).Int("next_id", r.nextID).Msg("repository: order stored")
	return orderInput.ID, nil
}

func (r *memoryRepository) GetOrderByID(_ context.Context, id int) (*Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o, nil
}
