package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/navdir"
	"github.com/fwojciec/navdir/etree"
	"github.com/fwojciec/navdir/htmltomarkdown"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	artifact := deps.Config.Output
	if c.Artifact != "" {
		artifact = c.Artifact
	}

	exporter := findExporter(deps.exporters(c.Title), c.Format)
	if exporter == nil {
		err := navdir.Errorf(navdir.EINVALID, "unknown export format %q", c.Format)
		fmt.Fprintf(deps.Stderr, "error: %s\n", navdir.ErrorMessage(err))
		return err
	}

	catalog, err := c.load(deps, artifact)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", navdir.ErrorMessage(err))
		return err
	}

	if c.Output == "" || c.Output == "-" {
		return c.write(deps, exporter, deps.Stdout, catalog)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	if err := c.write(deps, exporter, f, catalog); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	fmt.Fprintf(deps.Stderr, "Exported %d categories to %s\n", len(catalog.Categories), c.Output)
	return nil
}

// load reads the catalog from the recorded snapshot when one is named,
// otherwise from the artifact.
func (c *ExportCmd) load(deps *Dependencies, artifact string) (*navdir.Catalog, error) {
	if c.Snapshot == "" {
		return deps.store(artifact).LoadCatalog(deps.Ctx)
	}

	path := deps.Config.Database
	if c.DB != "" {
		path = c.DB
	}
	if path == "" && deps.Snapshots == nil {
		return nil, navdir.Errorf(navdir.EINVALID, "history database required: pass --db or set database in config")
	}
	snapshots, err := deps.snapshots(path)
	if err != nil {
		return nil, err
	}
	return snapshots.FindSnapshotCatalog(deps.Ctx, c.Snapshot)
}

func (c *ExportCmd) write(deps *Dependencies, e navdir.Exporter, w io.Writer, catalog *navdir.Catalog) error {
	if err := e.Export(w, catalog); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", navdir.ErrorMessage(err))
		return err
	}
	return nil
}

func (d *Dependencies) exporters(title string) []navdir.Exporter {
	if d.Exporters != nil {
		return d.Exporters
	}
	return []navdir.Exporter{
		etree.NewOPMLExporter(title),
		htmltomarkdown.NewExporter(title),
		jsonExporter{},
	}
}

func findExporter(exporters []navdir.Exporter, name string) navdir.Exporter {
	for _, e := range exporters {
		if e.Name() == name {
			return e
		}
	}
	return nil
}

// jsonExporter writes the catalog in artifact form.
type jsonExporter struct{}

func (jsonExporter) Name() string { return "json" }

func (jsonExporter) Export(w io.Writer, c *navdir.Catalog) error {
	return navdir.EncodeCatalog(w, c)
}
