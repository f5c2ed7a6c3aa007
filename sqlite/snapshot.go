package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/navdir"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ navdir.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements navdir.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB

	// Now returns the creation time of new snapshots. Defaults to time.Now.
	Now func() time.Time
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db, Now: time.Now}
}

// CreateSnapshot stores the catalog rows together with the snapshot header
// in a single transaction. The content hash is computed over the serialized
// artifact, so two runs with identical output share a hash.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *navdir.Snapshot, c *navdir.Catalog) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	if c == nil {
		return navdir.Errorf(navdir.EINVALID, "snapshot catalog required")
	}

	data, err := navdir.MarshalCatalog(c)
	if err != nil {
		return err
	}

	snapshot.ID = uuid.New().String()
	snapshot.ContentHash = hashContent(data)
	snapshot.Categories = len(c.Categories)
	snapshot.Sites = c.SiteCount()
	snapshot.CreatedAt = s.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, source_url, content_hash, category_count, site_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, snapshot.ID, snapshot.SourceURL, snapshot.ContentHash, snapshot.Categories, snapshot.Sites,
		snapshot.CreatedAt.Format(timestampFormat)); err != nil {
		return err
	}

	for i, cat := range c.Categories {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO snapshot_categories (snapshot_id, position, category_id, name)
			VALUES (?, ?, ?, ?)
		`, snapshot.ID, i, cat.ID, cat.Name); err != nil {
			return err
		}

		for j, site := range cat.Sites {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO snapshot_sites (snapshot_id, category_position, position, name, url, icon, description)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, snapshot.ID, i, j, site.Name, site.URL, site.Icon, site.Description); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter navdir.SnapshotFilter) ([]*navdir.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, content_hash, category_count, site_count, created_at FROM snapshots WHERE 1=1")

	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*navdir.Snapshot
	for rows.Next() {
		var snapshot navdir.Snapshot
		var createdAt string

		if err := rows.Scan(&snapshot.ID, &snapshot.SourceURL, &snapshot.ContentHash,
			&snapshot.Categories, &snapshot.Sites, &createdAt); err != nil {
			return nil, err
		}

		snapshot.CreatedAt, err = parseTimestamp(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		snapshots = append(snapshots, &snapshot)
	}

	return snapshots, rows.Err()
}

// FindSnapshotCatalog rebuilds the catalog recorded by a snapshot.
func (s *SnapshotService) FindSnapshotCatalog(ctx context.Context, id string) (*navdir.Catalog, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM snapshots WHERE id = ?`, id).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, navdir.Errorf(navdir.ENOTFOUND, "snapshot not found")
	}
	if err != nil {
		return nil, err
	}

	c := navdir.NewCatalog()

	rows, err := s.db.QueryContext(ctx, `
		SELECT category_id, name FROM snapshot_categories
		WHERE snapshot_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		cat := navdir.Category{Sites: []navdir.Site{}}
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, err
		}
		c.Categories = append(c.Categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	siteRows, err := s.db.QueryContext(ctx, `
		SELECT category_position, name, url, icon, description FROM snapshot_sites
		WHERE snapshot_id = ?
		ORDER BY category_position, position
	`, id)
	if err != nil {
		return nil, err
	}
	defer siteRows.Close()

	for siteRows.Next() {
		var pos int
		var site navdir.Site
		if err := siteRows.Scan(&pos, &site.Name, &site.URL, &site.Icon, &site.Description); err != nil {
			return nil, err
		}
		cat := c.Category(pos)
		if cat == nil {
			return nil, navdir.Errorf(navdir.EINTERNAL, "snapshot %s site references missing category %d", id, pos)
		}
		cat.Sites = append(cat.Sites, site)
	}

	return c, siteRows.Err()
}
