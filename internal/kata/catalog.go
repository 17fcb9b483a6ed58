package kata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/Codinho_Go/internal/domain"
)

// Catalog is the on-disk format consumed by ImportCatalog
type Catalog struct {
	Version string        `json:"version"`
	Katas   []domain.Kata `json:"katas"`
}

// LoadCatalog reads a catalog file. Schema validation is done separately.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return &catalog, nil
}
