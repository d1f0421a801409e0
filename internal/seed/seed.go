package seed

import (
	"context"

	"audiophile/internal/model"
)

// Loader defines the interface for loading a catalogue seed file. The seed
// format is gzipped JSON lines, one product per line.
type Loader interface {
	// Load reads a seed file and returns the products it describes.
	Load(ctx context.Context, source string) ([]model.Product, error)
}
