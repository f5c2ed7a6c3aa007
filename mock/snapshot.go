package mock

import (
	"context"

	"github.com/fwojciec/navdir"
)

var _ navdir.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of navdir.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn      func(ctx context.Context, s *navdir.Snapshot, c *navdir.Catalog) error
	FindSnapshotsFn       func(ctx context.Context, filter navdir.SnapshotFilter) ([]*navdir.Snapshot, error)
	FindSnapshotCatalogFn func(ctx context.Context, id string) (*navdir.Catalog, error)
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *navdir.Snapshot, c *navdir.Catalog) error {
	return s.CreateSnapshotFn(ctx, snapshot, c)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter navdir.SnapshotFilter) ([]*navdir.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) FindSnapshotCatalog(ctx context.Context, id string) (*navdir.Catalog, error) {
	return s.FindSnapshotCatalogFn(ctx, id)
}
