package navdir

import "io"

// Exporter renders a catalog into an alternative format such as
// OPML or markdown.
type Exporter interface {
	// Export writes c to w.
	Export(w io.Writer, c *Catalog) error

	// Name returns the format identifier (e.g., "opml").
	Name() string
}
