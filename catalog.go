package navdir

import "context"

// Catalog is the full categorized directory produced by one extraction run.
// It is read-only once handed to a CatalogStore.
type Catalog struct {
	Categories []Category `json:"categories"`
}

// Category is a topical group of sites. Sites keep document order and
// contain no two entries with the same URL.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Sites []Site `json:"sites"`
}

// Site is one catalog entry. Icon and Description may be empty.
type Site struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// NewCatalog returns an empty catalog whose categories serialize as an
// empty array rather than null.
func NewCatalog() *Catalog {
	return &Catalog{Categories: []Category{}}
}

// SiteCount returns the number of sites across all categories.
func (c *Catalog) SiteCount() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Sites)
	}
	return n
}

// Category returns the category at index i, or nil if i is out of range.
func (c *Catalog) Category(i int) *Category {
	if c == nil || i < 0 || i >= len(c.Categories) {
		return nil
	}
	return &c.Categories[i]
}

// CatalogExtractor recovers a catalog from a page's raw markup.
type CatalogExtractor interface {
	// Extract parses html and returns the catalog it describes.
	// Returns EPARSE if the markup cannot be parsed into a tree.
	// Missing per-site fields never cause an error.
	Extract(html string) (*Catalog, error)
}

// CatalogStore persists and loads the catalog artifact.
type CatalogStore interface {
	// SaveCatalog writes the catalog, replacing any previous artifact.
	SaveCatalog(ctx context.Context, c *Catalog) error

	// LoadCatalog reads the artifact back.
	// Returns ELOAD if it is missing, unreadable or malformed.
	LoadCatalog(ctx context.Context) (*Catalog, error)
}
