package repository

import (
	"context"

	"audiophile/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for catalogue read operations.
type ProductRepository interface {
	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	// Returns nil (no error) when the product does not exist.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// GetBySlug retrieves a single product by its slug.
	// Returns nil (no error) when the product does not exist.
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)

	// GetByCategory retrieves all products in a category. An unknown
	// category yields an empty slice, not an error.
	GetByCategory(ctx context.Context, category string) ([]model.Product, error)

	// CreateIfAbsent inserts products, skipping any whose slug already
	// exists. Used by catalogue seeding.
	CreateIfAbsent(ctx context.Context, products []model.Product) (int64, error)
}

// CheckoutRepository defines the interface for the checkout write sequence.
// All writes take an explicit transaction so the service controls the
// atomicity boundary.
type CheckoutRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateCustomer inserts a customer row within the transaction and
	// sets the store-assigned ID on the model.
	CreateCustomer(ctx context.Context, tx pgx.Tx, customer *model.Customer) error

	// CreateOrder inserts an order row within the transaction and sets
	// the store-assigned ID on the model.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts the order's line items within the transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetOrderByID retrieves an order by its ID along with its items.
	// Returns a nil order (no error) when it does not exist.
	GetOrderByID(ctx context.Context, id int64) (*model.Order, []model.OrderItem, error)
}
