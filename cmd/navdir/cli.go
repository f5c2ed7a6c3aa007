package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/navdir"
	"github.com/fwojciec/navdir/koanf"
)

// Dependencies holds all services and configuration for command execution.
// Service fields left nil are built from Config by the command that needs
// them.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config *koanf.Config
	Logger *slog.Logger

	Fetcher   navdir.Fetcher
	Store     navdir.CatalogStore
	Snapshots navdir.SnapshotService
	Exporters []navdir.Exporter

	main *Main
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to YAML config file" default:"navdir.yaml"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Crawl   CrawlCmd   `cmd:"" help:"Extract the catalog from the source page"`
	Serve   ServeCmd   `cmd:"" help:"Serve the catalog web client"`
	Export  ExportCmd  `cmd:"" help:"Export the catalog as OPML, Markdown or JSON"`
	History HistoryCmd `cmd:"" help:"List recorded extraction runs"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL     string         `help:"Source page URL"`
	Output  string         `short:"o" help:"Catalog artifact path"`
	Delay   *time.Duration `help:"Wait before fetching"`
	Timeout *time.Duration `help:"Fetch timeout"`
	Retries *int           `help:"Fetch retries"`
	Browser bool           `short:"b" help:"Render the page with headless Chrome"`
	DB      string         `name:"db" help:"SQLite database for run history"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr   string `help:"Listen address"`
	Output string `short:"o" help:"Catalog artifact path"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Format   string `short:"f" required:"" enum:"opml,markdown,json" help:"Export format (opml, markdown, json)"`
	Output   string `short:"o" default:"-" help:"Destination file, - for stdout"`
	Artifact string `help:"Catalog artifact path"`
	Snapshot string `help:"Export a recorded snapshot instead of the artifact"`
	DB       string `name:"db" help:"SQLite database for run history"`
	Title    string `default:"Navigation" help:"Document title"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	DB    string `name:"db" help:"SQLite database for run history"`
	Limit int    `short:"n" default:"20" help:"Maximum rows to show"`
}
