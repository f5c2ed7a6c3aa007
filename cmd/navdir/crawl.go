package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/navdir"
	"github.com/fwojciec/navdir/crawl"
	"github.com/fwojciec/navdir/fs"
	"github.com/fwojciec/navdir/goquery"
	navhttp "github.com/fwojciec/navdir/http"
	"github.com/fwojciec/navdir/koanf"
	"github.com/fwojciec/navdir/rod"
	navslog "github.com/fwojciec/navdir/slog"
	"github.com/fwojciec/navdir/sqlite"
)

// retryBase is the first retry delay; later retries double it.
const retryBase = time.Second

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	cfg := *deps.Config
	c.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", navdir.ErrorMessage(err))
		return err
	}

	fetcher, err := deps.fetcher(&cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", navdir.ErrorMessage(err))
		if cfg.Browser {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
		}
		return err
	}

	snapshots, err := deps.snapshots(cfg.Database)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", navdir.ErrorMessage(err))
		return err
	}

	runner := &crawl.Runner{
		Fetcher:     navslog.NewLoggingFetcher(fetcher, deps.Logger),
		Extractor:   navslog.NewLoggingExtractor(goquery.NewExtractor(goquery.WithRules(rulesFrom(cfg.Extract))), deps.Logger),
		Store:       deps.store(cfg.Output),
		Snapshots:   snapshots,
		StartDelay:  cfg.StartDelay,
		RetryDelays: crawl.BackoffDelays(cfg.Retries, retryBase),
		Logger:      deps.Logger,
	}

	result, err := runner.Run(deps.Ctx, cfg.SourceURL)
	if result == nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", navdir.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Successfully crawled %d categories.\n", len(result.Catalog.Categories))
	fmt.Fprintf(deps.Stdout, "Data saved to %s\n", cfg.Output)
	if result.Snapshot != nil {
		fmt.Fprintf(deps.Stdout, "Snapshot %s recorded (%s fetched)\n", result.Snapshot.ID, crawl.FormatBytes(result.Bytes))
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", navdir.ErrorMessage(err))
		return err
	}
	return nil
}

// apply overlays explicitly set flags on cfg.
func (c *CrawlCmd) apply(cfg *koanf.Config) {
	if c.URL != "" {
		cfg.SourceURL = c.URL
	}
	if c.Output != "" {
		cfg.Output = c.Output
	}
	if c.Delay != nil {
		cfg.StartDelay = *c.Delay
	}
	if c.Timeout != nil {
		cfg.Timeout = *c.Timeout
	}
	if c.Retries != nil {
		cfg.Retries = *c.Retries
	}
	if c.Browser {
		cfg.Browser = true
	}
	if c.DB != "" {
		cfg.Database = c.DB
	}
}

func rulesFrom(cfg koanf.ExtractConfig) goquery.Rules {
	return goquery.Rules{
		CategoryTag:  cfg.CategoryTag,
		SiteTag:      cfg.SiteTag,
		ContainerTag: cfg.ContainerTag,
		Exclude:      cfg.Exclude,
		AlwaysAdmit:  cfg.AlwaysAdmit,
	}
}

func (d *Dependencies) fetcher(cfg *koanf.Config) (navdir.Fetcher, error) {
	if d.Fetcher != nil {
		return d.Fetcher, nil
	}
	if cfg.Browser {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cfg.Timeout), rod.WithUserAgent(cfg.UserAgent))
		if err != nil {
			return nil, err
		}
		d.closeLater(f)
		return f, nil
	}
	f := navhttp.NewFetcher(navhttp.WithTimeout(cfg.Timeout), navhttp.WithUserAgent(cfg.UserAgent))
	d.closeLater(f)
	return f, nil
}

func (d *Dependencies) store(path string) navdir.CatalogStore {
	if d.Store != nil {
		return d.Store
	}
	return fs.NewCatalogStore(path)
}

// snapshots opens the history database. An empty path disables history.
func (d *Dependencies) snapshots(path string) (navdir.SnapshotService, error) {
	if d.Snapshots != nil {
		return d.Snapshots, nil
	}
	if path == "" {
		return nil, nil
	}
	db := sqlite.NewDB(path)
	if err := db.Open(); err != nil {
		return nil, navdir.Errorf(navdir.EINTERNAL, "failed to open database at %q: %v", path, err)
	}
	d.closeLater(db)
	return sqlite.NewSnapshotService(db), nil
}

func (d *Dependencies) closeLater(c interface{ Close() error }) {
	if d.main != nil {
		d.main.track(c)
	}
}
