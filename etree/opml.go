// Package etree exports a catalog as an OPML outline that feed readers
// and bookmark managers can import.
package etree

import (
	"io"

	"github.com/beevik/etree"
	"github.com/fwojciec/navdir"
)

// Ensure OPMLExporter implements navdir.Exporter at compile time.
var _ navdir.Exporter = (*OPMLExporter)(nil)

// OPMLExporter writes one outline per category with one link outline per site.
type OPMLExporter struct {
	title string
}

// NewOPMLExporter creates a new OPMLExporter whose head carries title.
func NewOPMLExporter(title string) *OPMLExporter {
	return &OPMLExporter{title: title}
}

// Name returns the format identifier.
func (e *OPMLExporter) Name() string {
	return "opml"
}

// Export writes c to w as an OPML 2.0 document.
func (e *OPMLExporter) Export(w io.Writer, c *navdir.Catalog) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	opml := doc.CreateElement("opml")
	opml.CreateAttr("version", "2.0")

	head := opml.CreateElement("head")
	head.CreateElement("title").SetText(e.title)

	body := opml.CreateElement("body")
	for _, cat := range c.Categories {
		group := body.CreateElement("outline")
		group.CreateAttr("text", cat.Name)
		group.CreateAttr("title", cat.Name)
		group.CreateAttr("id", cat.ID)

		for _, site := range cat.Sites {
			link := group.CreateElement("outline")
			link.CreateAttr("type", "link")
			link.CreateAttr("text", site.Name)
			link.CreateAttr("url", site.URL)
			if site.Description != "" {
				link.CreateAttr("description", site.Description)
			}
			if site.Icon != "" {
				link.CreateAttr("icon", site.Icon)
			}
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
