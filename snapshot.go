package navdir

import (
	"context"
	"time"
)

// Snapshot records one successful extraction run.
type Snapshot struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	ContentHash string    `json:"contentHash"`
	Categories  int       `json:"categories"`
	Sites       int       `json:"sites"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.SourceURL == "" {
		return Errorf(EINVALID, "snapshot source URL required")
	}
	return nil
}

// SnapshotService keeps the history of extraction runs.
type SnapshotService interface {
	// CreateSnapshot records catalog as a new snapshot. ID, hash, counts and
	// CreatedAt are assigned by the implementation.
	CreateSnapshot(ctx context.Context, snapshot *Snapshot, catalog *Catalog) error

	// FindSnapshots returns snapshots matching the filter, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// FindSnapshotCatalog returns the catalog recorded by a snapshot.
	// Returns ENOTFOUND if the snapshot does not exist.
	FindSnapshotCatalog(ctx context.Context, id string) (*Catalog, error)
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
