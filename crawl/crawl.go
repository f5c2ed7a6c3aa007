// Package crawl orchestrates a single extraction run: wait, fetch the source
// page, extract the catalog, write the artifact and record a snapshot.
package crawl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/navdir"
)

// Runner performs extraction runs against a source page.
type Runner struct {
	Fetcher   navdir.Fetcher
	Extractor navdir.CatalogExtractor
	Store     navdir.CatalogStore

	// Snapshots is optional. When set, every saved catalog is also recorded
	// in the history.
	Snapshots navdir.SnapshotService

	StartDelay  time.Duration
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// Result holds the outcome of a run.
type Result struct {
	Catalog  *navdir.Catalog
	Bytes    int
	Snapshot *navdir.Snapshot
}

// Run fetches sourceURL, extracts its catalog and saves it. Nothing is saved
// when the fetch or the extraction fails. A snapshot failure is reported
// after the artifact has been written.
func (r *Runner) Run(ctx context.Context, sourceURL string) (*Result, error) {
	if sourceURL == "" {
		return nil, navdir.Errorf(navdir.EINVALID, "source URL required")
	}
	logger := r.logger()

	if r.StartDelay > 0 {
		logger.Info(fmt.Sprintf("Waiting %s before starting", r.StartDelay))
		if err := sleep(ctx, r.StartDelay); err != nil {
			return nil, err
		}
	}

	logger.Info("Fetching source page", "url", sourceURL)
	html, err := FetchWithRetryDelays(ctx, sourceURL, r.Fetcher.Fetch, func(format string, args ...any) {
		logger.Warn(fmt.Sprintf(format, args...))
	}, r.RetryDelays)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if navdir.ErrorCode(err) == navdir.EINTERNAL {
			return nil, navdir.Errorf(navdir.EFETCH, "fetch %s: %v", sourceURL, err)
		}
		return nil, err
	}

	catalog, err := r.Extractor.Extract(html)
	if err != nil {
		if navdir.ErrorCode(err) == navdir.EINTERNAL {
			return nil, navdir.Errorf(navdir.EPARSE, "extract %s: %v", sourceURL, err)
		}
		return nil, err
	}

	if err := r.Store.SaveCatalog(ctx, catalog); err != nil {
		return nil, err
	}
	logger.Info("Catalog saved", "categories", len(catalog.Categories), "sites", catalog.SiteCount())

	result := &Result{Catalog: catalog, Bytes: len(html)}
	if r.Snapshots == nil {
		return result, nil
	}

	snapshot := &navdir.Snapshot{SourceURL: sourceURL}
	if err := r.Snapshots.CreateSnapshot(ctx, snapshot, catalog); err != nil {
		return result, fmt.Errorf("record snapshot: %w", err)
	}
	result.Snapshot = snapshot
	logger.Debug("Snapshot recorded", "id", snapshot.ID, "hash", snapshot.ContentHash)
	return result, nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
