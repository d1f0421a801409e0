package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

type seedProduct struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price"`
}

// main writes a sample gzipped JSON-lines catalogue seed file, matching the
// format consumed by the seed loader.
func main() {
	dataDir := "data"
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	products := []seedProduct{
		{"xx99-mark-two-headphones", "XX99 Mark II Headphones", "Flagship over-ear headphones with active noise cancelling.", "headphones", "2999.00"},
		{"xx99-mark-one-headphones", "XX99 Mark I Headphones", "Studio reference headphones with a closed-back design.", "headphones", "1750.00"},
		{"xx59-headphones", "XX59 Headphones", "Wireless on-ear headphones with 30-hour battery life.", "headphones", "899.00"},
		{"zx9-speaker", "ZX9 Speaker", "Three-way active bookshelf speaker pair with wireless input.", "speakers", "4500.00"},
		{"zx7-speaker", "ZX7 Speaker", "Passive bookshelf speaker pair with a classic walnut finish.", "speakers", "3500.00"},
		{"yx1-earphones", "YX1 Wireless Earphones", "True wireless earphones with adaptive noise isolation.", "earphones", "599.00"},
	}

	filePath := filepath.Join(dataDir, "products.jsonl.gz")
	if err := writeSeedFile(filePath, products); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d products\n", filePath, len(products))
}

func writeSeedFile(filePath string, products []seedProduct) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	encoder := json.NewEncoder(gzipWriter)
	for _, p := range products {
		if err := encoder.Encode(p); err != nil {
			return err
		}
	}

	return nil
}
