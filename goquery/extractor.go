// Package goquery recovers a navdir.Catalog from a flat, heading-based
// HTML page using goquery.
package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/navdir"
)

// Ensure Extractor implements navdir.CatalogExtractor at compile time.
var _ navdir.CatalogExtractor = (*Extractor)(nil)

// Extractor walks every element of a page in document order. Category
// markers open a new category; site markers add a site to the category
// opened most recently. Everything else is ignored.
type Extractor struct {
	rules     Rules
	resolvers []LinkResolver
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRules replaces the layout rules. Empty tag names keep their defaults.
func WithRules(r Rules) Option {
	return func(e *Extractor) {
		e.rules = r.withDefaults()
	}
}

// WithLinkResolvers replaces the link resolution chain.
func WithLinkResolvers(resolvers ...LinkResolver) Option {
	return func(e *Extractor) {
		e.resolvers = resolvers
	}
}

// NewExtractor creates a new Extractor using DefaultRules and
// DefaultLinkResolvers unless overridden.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		rules:     DefaultRules(),
		resolvers: DefaultLinkResolvers(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses html and returns the catalog it describes. Categories
// that end up without sites are dropped.
func (e *Extractor) Extract(html string) (*navdir.Catalog, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, navdir.Errorf(navdir.EPARSE, "failed to parse HTML: %v", err)
	}

	t := &traversal{extractor: e, catalog: navdir.NewCatalog(), current: -1}
	doc.Find("*").Each(t.visit)

	return t.result(), nil
}

// traversal is the accumulator folded over the element sequence.
type traversal struct {
	extractor *Extractor
	catalog   *navdir.Catalog

	// current indexes the open category in catalog.Categories, -1 before the first.
	current int

	// seen holds the URLs already recorded in the open category.
	seen map[string]struct{}
}

func (t *traversal) visit(_ int, el *goquery.Selection) {
	switch goquery.NodeName(el) {
	case t.extractor.rules.CategoryTag:
		t.openCategory(el)
	case t.extractor.rules.SiteTag:
		if t.current >= 0 {
			t.addSite(el)
		}
	}
}

func (t *traversal) openCategory(el *goquery.Selection) {
	title := strings.TrimSpace(el.Text())
	if !t.extractor.rules.Admit(title) {
		return
	}

	id, _ := el.Attr("id")
	if id == "" {
		id = fmt.Sprintf("category-%d", len(t.catalog.Categories)+1)
	}

	t.catalog.Categories = append(t.catalog.Categories, navdir.Category{
		ID:    id,
		Name:  title,
		Sites: []navdir.Site{},
	})
	t.current = len(t.catalog.Categories) - 1
	t.seen = make(map[string]struct{})
}

func (t *traversal) addSite(el *goquery.Selection) {
	href, ok := resolveLink(el, t.extractor.resolvers)
	if !ok || !strings.HasPrefix(href, "http") {
		return
	}
	if _, dup := t.seen[href]; dup {
		return
	}

	site := navdir.Site{
		Name: strings.TrimSpace(el.Text()),
		URL:  href,
	}

	container := el.Closest(t.extractor.rules.ContainerTag)
	if container.Length() > 0 {
		site.Description = strings.TrimSpace(container.Find("p").First().Text())
		site.Icon, _ = container.Find("img").First().Attr("src")
	}

	cat := &t.catalog.Categories[t.current]
	cat.Sites = append(cat.Sites, site)
	t.seen[href] = struct{}{}
}

// result drops categories without sites, preserving order.
func (t *traversal) result() *navdir.Catalog {
	out := navdir.NewCatalog()
	for _, cat := range t.catalog.Categories {
		if len(cat.Sites) > 0 {
			out.Categories = append(out.Categories, cat)
		}
	}
	return out
}
