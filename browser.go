package navdir

import "strings"

// FilterSites returns the sites whose name or description contains keyword,
// ignoring case. An empty keyword returns sites unchanged. The result keeps
// input order.
func FilterSites(sites []Site, keyword string) []Site {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return sites
	}

	matched := make([]Site, 0, len(sites))
	for _, s := range sites {
		if strings.Contains(strings.ToLower(s.Name), keyword) ||
			(s.Description != "" && strings.Contains(strings.ToLower(s.Description), keyword)) {
			matched = append(matched, s)
		}
	}
	return matched
}

// VisibleSites returns the sites of the category at index filtered by keyword.
// Returns nil if index is out of range.
func VisibleSites(c *Catalog, index int, keyword string) []Site {
	cat := c.Category(index)
	if cat == nil {
		return nil
	}
	return FilterSites(cat.Sites, keyword)
}

// Browser holds the client-side view state over a loaded catalog: the
// active category and the current search keyword. Every query re-derives
// the visible set from the full catalog.
type Browser struct {
	catalog *Catalog
	active  int
	keyword string
}

// NewBrowser returns a Browser positioned on the first category.
func NewBrowser(c *Catalog) *Browser {
	return &Browser{catalog: c}
}

// Catalog returns the catalog being browsed.
func (b *Browser) Catalog() *Catalog {
	return b.catalog
}

// ActiveIndex returns the index of the active category.
func (b *Browser) ActiveIndex() int {
	return b.active
}

// Keyword returns the normalized search keyword.
func (b *Browser) Keyword() string {
	return b.keyword
}

// SwitchCategory makes the category at i active.
// Returns false without changing state if i is already active or out of range.
func (b *Browser) SwitchCategory(i int) bool {
	if i == b.active || b.catalog.Category(i) == nil {
		return false
	}
	b.active = i
	return true
}

// Search sets the keyword used to filter the active category.
func (b *Browser) Search(keyword string) {
	b.keyword = strings.ToLower(strings.TrimSpace(keyword))
}

// ActiveCategory returns the active category, or nil for an empty catalog.
func (b *Browser) ActiveCategory() *Category {
	return b.catalog.Category(b.active)
}

// VisibleSites returns the active category's sites matching the keyword.
func (b *Browser) VisibleSites() []Site {
	return VisibleSites(b.catalog, b.active, b.keyword)
}
