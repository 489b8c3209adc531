package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/fitness-roadmap/internal/schemas"
	"github.com/jonathan/fitness-roadmap/internal/types"
	schemafiles "github.com/jonathan/fitness-roadmap/schemas"
)

//go:embed seed.json
var seed []byte

// Load parses, validates and normalizes a catalog document.
func Load(data []byte) (*types.Catalog, error) {
	if err := schemas.Validate(schemafiles.Catalog, data); err != nil {
		return nil, &LoadError{Message: "schema validation failed", Cause: err}
	}

	var catalog types.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, &LoadError{Message: "failed to unmarshal JSON", Cause: err}
	}

	if err := Normalize(&catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// LoadFile loads a catalog from a JSON file.
func LoadFile(path string) (*types.Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return Load(content)
}

// Default returns a fresh copy of the built-in workout library.
func Default() *types.Catalog {
	catalog, err := Load(seed)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return catalog
}

// LoadOrDefault loads path when set, otherwise the built-in library.
func LoadOrDefault(path string) (*types.Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
