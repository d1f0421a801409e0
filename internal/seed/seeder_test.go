package seed

import (
	"context"
	"errors"
	"testing"

	"audiophile/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLoader is a mock implementation of Loader.
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Load(ctx context.Context, source string) ([]model.Product, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	args := m.Called(ctx, slug)
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	args := m.Called(ctx, category)
	return nil, args.Error(1)
}

func (m *MockProductRepository) CreateIfAbsent(ctx context.Context, products []model.Product) (int64, error) {
	args := m.Called(ctx, products)
	return args.Get(0).(int64), args.Error(1)
}

func TestSeeder_Run(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	seedProducts := []model.Product{
		{Slug: "zx9-speaker", Name: "ZX9 Speaker", Category: "speakers", Price: decimal.RequireFromString("4500.00")},
		{Slug: "yx1-earphones", Name: "YX1 Wireless Earphones", Category: "earphones", Price: decimal.RequireFromString("599.00")},
	}

	t.Run("Loads and inserts products", func(t *testing.T) {
		mockLoader := new(MockLoader)
		mockRepo := new(MockProductRepository)

		mockLoader.On("Load", mock.Anything, "data/products.jsonl.gz").Return(seedProducts, nil)
		mockRepo.On("CreateIfAbsent", mock.Anything, seedProducts).Return(int64(2), nil)

		seeder := NewSeeder(mockLoader, mockRepo, logger)
		err := seeder.Run(ctx, "data/products.jsonl.gz")
		require.NoError(t, err)

		mockLoader.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty seed inserts nothing", func(t *testing.T) {
		mockLoader := new(MockLoader)
		mockRepo := new(MockProductRepository)

		mockLoader.On("Load", mock.Anything, "empty.jsonl.gz").Return([]model.Product{}, nil)

		seeder := NewSeeder(mockLoader, mockRepo, logger)
		err := seeder.Run(ctx, "empty.jsonl.gz")
		require.NoError(t, err)

		mockRepo.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
	})

	t.Run("Load failure surfaces", func(t *testing.T) {
		mockLoader := new(MockLoader)
		mockRepo := new(MockProductRepository)

		mockLoader.On("Load", mock.Anything, "bad.jsonl.gz").Return(nil, errors.New("corrupt file"))

		seeder := NewSeeder(mockLoader, mockRepo, logger)
		err := seeder.Run(ctx, "bad.jsonl.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load catalogue seed")
		mockRepo.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
	})

	t.Run("Insert failure surfaces", func(t *testing.T) {
		mockLoader := new(MockLoader)
		mockRepo := new(MockProductRepository)

		mockLoader.On("Load", mock.Anything, "data/products.jsonl.gz").Return(seedProducts, nil)
		mockRepo.On("CreateIfAbsent", mock.Anything, seedProducts).Return(int64(0), errors.New("insert failed"))

		seeder := NewSeeder(mockLoader, mockRepo, logger)
		err := seeder.Run(ctx, "data/products.jsonl.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to seed catalogue")
	})
}
