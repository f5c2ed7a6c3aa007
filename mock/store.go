package mock

import (
	"context"

	"github.com/fwojciec/navdir"
)

var _ navdir.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is a mock implementation of navdir.CatalogStore.
type CatalogStore struct {
	SaveCatalogFn func(ctx context.Context, c *navdir.Catalog) error
	LoadCatalogFn func(ctx context.Context) (*navdir.Catalog, error)
}

func (s *CatalogStore) SaveCatalog(ctx context.Context, c *navdir.Catalog) error {
	return s.SaveCatalogFn(ctx, c)
}

func (s *CatalogStore) LoadCatalog(ctx context.Context) (*navdir.Catalog, error) {
	return s.LoadCatalogFn(ctx)
}
