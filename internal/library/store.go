// Package library holds the catalog store: the ordered in-memory book
// collection and its JSON file persistence.
package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lepinkainen/shelf/internal/catalog"
)

// Store persists the catalog to a single JSON file. Every save
// overwrites the whole file; there is no incremental format and no
// schema versioning.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted catalog. A missing file is not an error and
// yields an empty catalog. A file that cannot be read or parsed also
// yields an empty catalog, plus the error so the caller can surface a
// non-fatal notice. Load never fails hard: failure degrades to
// "start fresh".
func (s *Store) Load() ([]catalog.Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read library file: %w", err)
	}

	var books []catalog.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("failed to parse library file: %w", err)
	}

	return books, nil
}

// Save serializes the full catalog, overwriting prior contents. On
// failure the in-memory catalog remains the source of truth; the
// caller decides how to surface the error.
func (s *Store) Save(books []catalog.Book) error {
	// An empty catalog still serializes to a valid array
	if books == nil {
		books = []catalog.Book{}
	}

	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal library: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create library directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write library file: %w", err)
	}

	return nil
}
