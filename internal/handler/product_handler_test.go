package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"audiophile/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func sampleProducts() []model.Product {
	return []model.Product{
		{ID: 1, Slug: "zx9-speaker", Name: "ZX9 Speaker", Category: "speakers", Price: decimal.RequireFromString("4500.00"), CreatedAt: time.Now()},
		{ID: 2, Slug: "yx1-earphones", Name: "YX1 Wireless Earphones", Category: "earphones", Price: decimal.RequireFromString("599.00"), CreatedAt: time.Now()},
	}
}

func TestProductHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		method         string
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			method:         http.MethodGet,
			mockReturn:     sampleProducts(),
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Empty catalogue returns empty array",
			method:         http.MethodGet,
			mockReturn:     []model.Product{},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Service error",
			method:         http.MethodGet,
			mockError:      errors.New("query failed"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
		{
			name:           "Wrong method",
			method:         http.MethodPost,
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			if tt.expectService {
				mockService.On("GetAll", mock.Anything).Return(tt.mockReturn, tt.mockError)
			}

			h := NewProductHandler(mockService, logger)

			req := httptest.NewRequest(tt.method, "/api/products", nil)
			w := httptest.NewRecorder()

			h.GetAll(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var products []model.Product
				require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
				assert.Len(t, products, len(tt.mockReturn))
			}
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		path           string
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
		expectedCode   string
		expectService  bool
	}{
		{
			name:           "Found",
			path:           "/api/products/1",
			mockReturn:     &sampleProducts()[0],
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Not found",
			path:           "/api/products/99",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeProductNotFound,
			expectService:  true,
		},
		{
			name:           "Malformed ID",
			path:           "/api/products/not-a-number",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidID,
			expectService:  false,
		},
		{
			name:           "Service error",
			path:           "/api/products/1",
			mockError:      errors.New("query failed"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			if tt.expectService {
				mockService.On("GetByID", mock.Anything, mock.AnythingOfType("int64")).
					Return(tt.mockReturn, tt.mockError)
			}

			h := NewProductHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			h.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedCode != "" {
				var errResp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
				assert.Equal(t, tt.expectedCode, errResp.Error)
			}
		})
	}
}

func TestProductHandler_GetBySlug(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		path           string
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Found",
			path:           "/api/products/slug/zx9-speaker",
			mockReturn:     &sampleProducts()[0],
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Not found",
			path:           "/api/products/slug/missing-product",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Empty slug",
			path:           "/api/products/slug/",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			if tt.expectService {
				mockService.On("GetBySlug", mock.Anything, mock.AnythingOfType("string")).
					Return(tt.mockReturn, tt.mockError)
			}

			h := NewProductHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			h.GetBySlug(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestProductHandler_GetByCategory(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		path           string
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
		expectService  bool
		expectedCount  int
	}{
		{
			name:           "Found",
			path:           "/api/products/category/speakers",
			mockReturn:     sampleProducts()[:1],
			expectedStatus: http.StatusOK,
			expectService:  true,
			expectedCount:  1,
		},
		{
			name:           "No matches returns empty array",
			path:           "/api/products/category/amplifiers",
			mockReturn:     []model.Product{},
			expectedStatus: http.StatusOK,
			expectService:  true,
			expectedCount:  0,
		},
		{
			name:           "Service error",
			path:           "/api/products/category/speakers",
			mockError:      errors.New("query failed"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			if tt.expectService {
				mockService.On("GetByCategory", mock.Anything, mock.AnythingOfType("string")).
					Return(tt.mockReturn, tt.mockError)
			}

			h := NewProductHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			h.GetByCategory(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var products []model.Product
				require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
				assert.Len(t, products, tt.expectedCount)
			}
		})
	}
}
