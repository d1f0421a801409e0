package repository

import (
	"context"
	"fmt"

	"audiophile/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

const productColumns = "id, slug, name, description, category, price, created_at"

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(&p.ID, &p.Slug, &p.Name, &p.Description, &p.Category, &p.Price, &p.CreatedAt)
}

// GetAll retrieves all products.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products ORDER BY id", productColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows, r.logger)
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE id = $1", productColumns)

	var p model.Product
	err := scanProduct(r.pool.QueryRow(ctx, query, id), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// GetBySlug retrieves a single product by its slug.
func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE slug = $1", productColumns)

	var p model.Product
	err := scanProduct(r.pool.QueryRow(ctx, query, slug), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("slug", slug).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("slug", slug).Msg("failed to query product by slug")
		return nil, fmt.Errorf("failed to query product by slug: %w", err)
	}

	return &p, nil
}

// GetByCategory retrieves all products in a category.
func (r *productRepository) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE category = $1 ORDER BY id", productColumns)

	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		r.logger.Error().Err(err).Str("category", category).Msg("failed to query products by category")
		return nil, fmt.Errorf("failed to query products by category: %w", err)
	}
	defer rows.Close()

	products, err := collectProducts(rows, r.logger)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}

	return products, nil
}

// CreateIfAbsent inserts products, skipping any whose slug already exists.
func (r *productRepository) CreateIfAbsent(ctx context.Context, products []model.Product) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO products (slug, name, description, category, price)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slug) DO NOTHING
	`

	var inserted int64
	for _, p := range products {
		tag, err := r.pool.Exec(ctx, query, p.Slug, p.Name, p.Description, p.Category, p.Price)
		if err != nil {
			r.logger.Error().Err(err).Str("slug", p.Slug).Msg("failed to insert product")
			return inserted, fmt.Errorf("failed to insert product %s: %w", p.Slug, err)
		}
		inserted += tag.RowsAffected()
	}

	r.logger.Debug().
		Int("submitted", len(products)).
		Int64("inserted", inserted).
		Msg("products inserted")

	return inserted, nil
}

// collectProducts drains the rows into a slice.
func collectProducts(rows pgx.Rows, logger zerolog.Logger) ([]model.Product, error) {
	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
