package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("duplicate product id")
	ErrInvalidProduct   = errors.New("invalid product")
)

type Repository interface {
	GetProductByID(ctx context.Context, id int) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
}

type memoryRepository struct {
	products map[int]*Product
	ids      []int
}

// NewRepository builds a read-only in-memory catalog from seed products.
func NewRepository(seed []Product) (Repository, error) {
	r := &memoryRepository{products: make(map[int]*Product, len(seed))}

	for i := range seed {
		p := seed[i]
		if p.Name == "" {
			return nil, fmt.Errorf("repository: product %d has no name: %w", p.ID, ErrInvalidProduct)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("repository: product %d has negative price %s: %w", p.ID, p.Price, ErrInvalidProduct)
		}
		if _, ok := r.products[p.ID]; ok {
			return nil, fmt.Errorf("repository: product %d: %w", p.ID, ErrDuplicateProduct)
		}
		r.products[p.ID] = &p
		r.ids = append(r.ids, p.ID)
	}
	sort.Ints(r.ids)

	return r, nil
}

func (r *memoryRepository) GetProductByID(_ context.Context, id int) (*Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (r *memoryRepository) ListProducts(_ context.Context) ([]*Product, error) {
	products := make([]*Product, 0, len(r.ids))
	for _, id := range r.ids {
		products = append(products, r.products[id])
	}
	return products, nil
}
