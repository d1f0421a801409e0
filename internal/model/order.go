package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents the buyer recorded for a single checkout.
// Every checkout inserts a fresh row; there is no deduplication by email.
type Customer struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Address   string    `json:"address" db:"address"`
	ZipCode   string    `json:"zipCode" db:"zip_code"`
	City      string    `json:"city" db:"city"`
	Country   string    `json:"country" db:"country"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Order represents a persisted customer order. The total is computed
// server-side from the submitted line items; the e-money fields are stored
// as provided and never interpreted.
type Order struct {
	ID            int64           `json:"id" db:"id"`
	CustomerID    int64           `json:"customerId" db:"customer_id"`
	Total         decimal.Decimal `json:"total" db:"total"`
	PaymentMethod string          `json:"paymentMethod" db:"payment_method"`
	EMoneyNumber  string          `json:"-" db:"e_money_number"`
	EMoneyPin     string          `json:"-" db:"e_money_pin"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
}

// OrderItem represents a line item in a persisted order.
type OrderItem struct {
	ID        int64           `json:"-" db:"id"`
	OrderID   int64           `json:"-" db:"order_id"`
	ProductID int64           `json:"productId" db:"product_id"`
	Quantity  int             `json:"quantity" db:"quantity"`
	Price     decimal.Decimal `json:"price" db:"price"`
}

// CheckoutRequest represents the request payload for a checkout.
type CheckoutRequest struct {
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	ZipCode       string         `json:"zip_code"`
	City          string         `json:"city"`
	Country       string         `json:"country"`
	PaymentMethod string         `json:"payment_method"`
	EMoneyNumber  string         `json:"e_money_number"`
	EMoneyPin     string         `json:"e_money_pin"`
	Items         []CheckoutItem `json:"items"`
}

// CheckoutItem is a single line item in a checkout request. The price is
// taken as submitted and is not re-derived from the catalogue.
type CheckoutItem struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CheckoutResponse is returned to the caller after a successful checkout.
type CheckoutResponse struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}

// OrderResponse represents an order read back with its line items.
type OrderResponse struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`
}
