package seed

import (
	"context"
	"fmt"

	"audiophile/internal/repository"

	"github.com/rs/zerolog"
)

// Seeder loads a catalogue seed file and inserts its products.
type Seeder struct {
	loader      Loader
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewSeeder creates a new catalogue seeder.
func NewSeeder(loader Loader, productRepo repository.ProductRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{
		loader:      loader,
		productRepo: productRepo,
		logger:      logger.With().Str("component", "catalogue-seeder").Logger(),
	}
}

// Run loads the seed source and inserts its products. Products whose slug
// already exists are skipped, so reseeding on every startup is safe.
func (s *Seeder) Run(ctx context.Context, source string) error {
	products, err := s.loader.Load(ctx, source)
	if err != nil {
		return fmt.Errorf("failed to load catalogue seed: %w", err)
	}

	if len(products) == 0 {
		s.logger.Warn().Str("source", source).Msg("catalogue seed is empty, nothing to insert")
		return nil
	}

	inserted, err := s.productRepo.CreateIfAbsent(ctx, products)
	if err != nil {
		return fmt.Errorf("failed to seed catalogue: %w", err)
	}

	s.logger.Info().
		Str("source", source).
		Int("loaded", len(products)).
		Int64("inserted", inserted).
		Msg("catalogue seeding completed")

	return nil
}
