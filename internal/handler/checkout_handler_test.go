package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"audiophile/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCheckoutService is a mock implementation of CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CheckoutResponse), args.Error(1)
}

func (m *MockCheckoutService) GetOrderByID(ctx context.Context, id int64) (*model.OrderResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

const validCheckoutBody = `{
	"name": "A",
	"email": "a@x.com",
	"phone": "202-555-0136",
	"address": "1137 Williams Avenue",
	"zip_code": "10001",
	"city": "New York",
	"country": "United States",
	"payment_method": "e-money",
	"e_money_number": "238521993",
	"e_money_pin": "6891",
	"items": [
		{"product_id": 1, "quantity": 2, "price": 10.00},
		{"product_id": 2, "quantity": 1, "price": 5.00}
	]
}`

func TestCheckoutHandler_Checkout(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		method         string
		body           string
		mockResponse   *model.CheckoutResponse
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Successful checkout",
			method:         http.MethodPost,
			body:           validCheckoutBody,
			mockResponse:   &model.CheckoutResponse{OrderID: 42, Message: "Checkout successful"},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Wrong method",
			method:         http.MethodGet,
			body:           "",
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
		{
			name:           "Malformed JSON",
			method:         http.MethodPost,
			body:           `{"name": `,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Empty order rejected",
			method:         http.MethodPost,
			body:           validCheckoutBody,
			mockError:      model.ErrEmptyOrder,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Invalid quantity rejected",
			method:         http.MethodPost,
			body:           validCheckoutBody,
			mockError:      model.ErrInvalidQuantity,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Missing field rejected",
			method:         http.MethodPost,
			body:           validCheckoutBody,
			mockError:      model.NewDomainError(model.ErrCodeMissingField, "email is required"),
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Persistence failure",
			method:         http.MethodPost,
			body:           validCheckoutBody,
			mockError:      errors.New("failed to process checkout: insert failed"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCheckoutService)
			if tt.expectService {
				mockService.On("Checkout", mock.Anything, mock.AnythingOfType("*model.CheckoutRequest")).
					Return(tt.mockResponse, tt.mockError)
			}

			h := NewCheckoutHandler(mockService, logger)

			req := httptest.NewRequest(tt.method, "/api/checkout", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.Checkout(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if !tt.expectService {
				mockService.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything)
			}

			if tt.expectedStatus == http.StatusOK {
				var resp model.CheckoutResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, int64(42), resp.OrderID)
				assert.Equal(t, "Checkout successful", resp.Message)
			}
		})
	}
}

func TestCheckoutHandler_Checkout_DecodesItems(t *testing.T) {
	logger := zerolog.Nop()
	mockService := new(MockCheckoutService)
	mockService.On("Checkout", mock.Anything, mock.AnythingOfType("*model.CheckoutRequest")).
		Return(&model.CheckoutResponse{OrderID: 1, Message: "Checkout successful"}, nil)

	h := NewCheckoutHandler(mockService, logger)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(validCheckoutBody))
	w := httptest.NewRecorder()

	h.Checkout(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	decoded := mockService.Calls[0].Arguments.Get(1).(*model.CheckoutRequest)
	require.Len(t, decoded.Items, 2)
	assert.Equal(t, int64(1), decoded.Items[0].ProductID)
	assert.Equal(t, 2, decoded.Items[0].Quantity)
	assert.True(t, decoded.Items[0].Price.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, "e-money", decoded.PaymentMethod)
}

func TestCheckoutHandler_GetOrderByID(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		path           string
		mockResponse   *model.OrderResponse
		mockError      error
		expectedStatus int
		expectedCode   string
		expectService  bool
	}{
		{
			name: "Found",
			path: "/api/orders/5",
			mockResponse: &model.OrderResponse{
				Order: model.Order{ID: 5, CustomerID: 3, Total: decimal.RequireFromString("25.00")},
				Items: []model.OrderItem{{OrderID: 5, ProductID: 1, Quantity: 2}},
			},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Not found",
			path:           "/api/orders/99",
			mockError:      model.ErrOrderNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Malformed ID",
			path:           "/api/orders/not-a-number",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidID,
			expectService:  false,
		},
		{
			name:           "Service error",
			path:           "/api/orders/5",
			mockError:      errors.New("query failed"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCheckoutService)
			if tt.expectService {
				mockService.On("GetOrderByID", mock.Anything, mock.AnythingOfType("int64")).
					Return(tt.mockResponse, tt.mockError)
			}

			h := NewCheckoutHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			h.GetOrderByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedCode != "" {
				var errResp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
				assert.Equal(t, tt.expectedCode, errResp.Error)
			}
		})
	}
}
