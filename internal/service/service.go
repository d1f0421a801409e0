package service

import (
	"context"

	"audiophile/internal/model"
)

// CatalogService defines read operations over the product catalogue.
type CatalogService interface {
	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// GetBySlug retrieves a single product by slug.
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)

	// GetByCategory retrieves all products in a category. An unknown
	// category yields an empty slice.
	GetByCategory(ctx context.Context, category string) ([]model.Product, error)
}

// CheckoutService defines the checkout transaction.
type CheckoutService interface {
	// Checkout validates the request and persists the customer, the order
	// and its line items as one atomic unit. Returns the store-assigned
	// order identifier.
	Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error)

	// GetOrderByID retrieves a persisted order with its items.
	GetOrderByID(ctx context.Context, id int64) (*model.OrderResponse, error)
}
