package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasiliy-maslov/craftcart/internal/catalog"
)

func TestNewRepository_Default(t *testing.T) {
	repo, err := catalog.NewRepository(catalog.DefaultProducts())
	require.NoError(t, err)

	products, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 4)

	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{101, 102, 103, 104}, ids)
	assert.Equal(t, "handloom", products[2].Name)
	assert.True(t, decimal.NewFromInt(499).Equal(products[2].Price))
}

func TestNewRepository_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		seed    []catalog.Product
		wantErr error
	}{
		{
			name: "duplicate_id",
			seed: []catalog.Product{
				{ID: 1, Name: "a", Price: decimal.NewFromInt(1)},
				{ID: 1, Name: "b", Price: decimal.NewFromInt(2)},
			},
			wantErr: catalog.ErrDuplicateProduct,
		},
		{
			name:    "negative_price",
			seed:    []catalog.Product{{ID: 1, Name: "a", Price: decimal.NewFromInt(-1)}},
			wantErr: catalog.ErrInvalidProduct,
		},
		{
			name:    "empty_name",
			seed:    []catalog.Product{{ID: 1, Price: decimal.NewFromInt(1)}},
			wantErr: catalog.ErrInvalidProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := catalog.NewRepository(tt.seed)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo)
		})
	}
}

func TestRepository_GetProductByID(t *testing.T) {
	repo, err := catalog.NewRepository(catalog.DefaultProducts())
	require.NoError(t, err)
	ctx := context.Background()

	p, err := repo.GetProductByID(ctx, 102)
	require.NoError(t, err)
	assert.Equal(t, "handmade craft", p.Name)

	again, err := repo.GetProductByID(ctx, 102)
	require.NoError(t, err)
	assert.Same(t, p, again)

	_, err = repo.GetProductByID(ctx, 999)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestProduct_String(t *testing.T) {
	p := catalog.Product{ID: 101, Name: "wooden craft", Price: decimal.NewFromInt(350)}
	assert.Equal(t, "Product ID: 101 | Name: wooden craft | Price: Rs.350.00", p.String())
}
