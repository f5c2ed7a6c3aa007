// Package htmltomarkdown exports a catalog as a markdown link list.
package htmltomarkdown

import (
	"bytes"
	"html/template"
	"io"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/navdir"
)

// Ensure Exporter implements navdir.Exporter at compile time.
var _ navdir.Exporter = (*Exporter)(nil)

// catalogTemplate renders the catalog as plain semantic HTML; escaping of
// untrusted names and URLs happens here, before conversion.
var catalogTemplate = template.Must(template.New("catalog").Parse(`<h1>{{.Title}}</h1>
{{range .Catalog.Categories}}<h2>{{.Name}}</h2>
<ul>
{{range .Sites}}<li><a href="{{.URL}}">{{.Name}}</a>{{with .Description}} - {{.}}{{end}}</li>
{{end}}</ul>
{{end}}`))

// Exporter renders a catalog to HTML and converts it to Markdown.
type Exporter struct {
	title string
	conv  *converter.Converter
}

// NewExporter creates a new Exporter whose document starts with a
// top-level heading of title.
func NewExporter(title string) *Exporter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Exporter{title: title, conv: conv}
}

// Name returns the format identifier.
func (e *Exporter) Name() string {
	return "markdown"
}

// Export writes c to w as Markdown.
func (e *Exporter) Export(w io.Writer, c *navdir.Catalog) error {
	var buf bytes.Buffer
	if err := catalogTemplate.Execute(&buf, struct {
		Title   string
		Catalog *navdir.Catalog
	}{e.title, c}); err != nil {
		return err
	}

	md, err := e.Convert(buf.String())
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, md+"\n")
	return err
}

// Convert transforms HTML content into Markdown.
func (e *Exporter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", navdir.Errorf(navdir.EINVALID, "empty HTML input")
	}

	return e.conv.ConvertString(html)
}
