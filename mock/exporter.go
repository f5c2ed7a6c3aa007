package mock

import (
	"io"

	"github.com/fwojciec/navdir"
)

var _ navdir.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of navdir.Exporter.
type Exporter struct {
	ExportFn func(w io.Writer, c *navdir.Catalog) error
	NameFn   func() string
}

func (e *Exporter) Export(w io.Writer, c *navdir.Catalog) error {
	return e.ExportFn(w, c)
}

func (e *Exporter) Name() string {
	return e.NameFn()
}
