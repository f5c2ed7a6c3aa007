// Package fs persists the catalog artifact as a JSON file.
package fs

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/navdir"
)

// DefaultPath is where the catalog artifact is written by default.
const DefaultPath = "data/navigation.json"

// Ensure CatalogStore implements navdir.CatalogStore at compile time.
var _ navdir.CatalogStore = (*CatalogStore)(nil)

// CatalogStore implements navdir.CatalogStore with a single JSON file.
// Saves go to a temporary file in the same directory which is then renamed
// over the artifact, so readers never observe a partial write.
type CatalogStore struct {
	path string
}

// NewCatalogStore creates a new CatalogStore for the file at path.
func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{path: path}
}

// SaveCatalog writes c to the artifact. An artifact whose bytes already
// match is left untouched.
func (s *CatalogStore) SaveCatalog(ctx context.Context, c *navdir.Catalog) error {
	data, err := navdir.MarshalCatalog(c)
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(s.path); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

// LoadCatalog reads the artifact.
// Returns ELOAD if the file is missing, unreadable or malformed.
func (s *CatalogStore) LoadCatalog(ctx context.Context) (*navdir.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, navdir.Errorf(navdir.ELOAD, "catalog %s not found", s.path)
	} else if err != nil {
		return nil, navdir.Errorf(navdir.ELOAD, "reading catalog %s: %v", s.path, err)
	}

	return navdir.DecodeCatalog(bytes.NewReader(data))
}
