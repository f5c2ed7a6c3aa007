package mock

import "github.com/fwojciec/navdir"

var _ navdir.CatalogExtractor = (*Extractor)(nil)

// Extractor is a mock implementation of navdir.CatalogExtractor.
type Extractor struct {
	ExtractFn func(html string) (*navdir.Catalog, error)
}

func (e *Extractor) Extract(html string) (*navdir.Catalog, error) {
	return e.ExtractFn(html)
}
