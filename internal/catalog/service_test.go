package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vasiliy-maslov/craftcart/internal/catalog"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetProductByID(ctx context.Context, id int) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]*catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func TestCatalogService_GetProduct_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := catalog.NewService(mockRepo)

	want := &catalog.Product{ID: 101, Name: "wooden craft", Price: decimal.NewFromInt(350)}
	mockRepo.On("GetProductByID", mock.Anything, 101).Return(want, nil).Once()

	got, err := svc.GetProduct(context.Background(), 101)
	require.NoError(t, err)
	assert.Same(t, want, got)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := catalog.NewService(mockRepo)

	mockRepo.On("GetProductByID", mock.Anything, 7).Return(nil, catalog.ErrProductNotFound).Once()

	got, err := svc.GetProduct(context.Background(), 7)
	require.ErrorIs(t, err, catalog.ErrProductNotFound)
	assert.Nil(t, got)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_ListProducts_RepositoryError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := catalog.NewService(mockRepo)

	repoErr := errors.New("boom")
	mockRepo.On("ListProducts", mock.Anything).Return(nil, repoErr).Once()

	got, err := svc.ListProducts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, got)
}
