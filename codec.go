package navdir

import (
	"bytes"
	"encoding/json"
	"io"
)

// EncodeCatalog writes c as indented JSON. Output is deterministic for a
// given catalog so re-running an unchanged extraction yields identical bytes.
func EncodeCatalog(w io.Writer, c *Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(normalize(c))
}

// MarshalCatalog is EncodeCatalog into a byte slice.
func MarshalCatalog(c *Catalog) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeCatalog(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// normalize replaces nil slices so every key is present as an array.
func normalize(c *Catalog) *Catalog {
	out := NewCatalog()
	if c == nil {
		return out
	}
	for _, cat := range c.Categories {
		if cat.Sites == nil {
			cat.Sites = []Site{}
		}
		out.Categories = append(out.Categories, cat)
	}
	return out
}

// wire types use pointers so missing keys can be told apart from empty values.
type wireCatalog struct {
	Categories *[]wireCategory `json:"categories"`
}

type wireCategory struct {
	ID    *string     `json:"id"`
	Name  *string     `json:"name"`
	Sites *[]wireSite `json:"sites"`
}

type wireSite struct {
	Name        *string `json:"name"`
	URL         *string `json:"url"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
}

// DecodeCatalog reads a catalog artifact from r.
// Returns ELOAD if the input is not a single JSON document or any mandatory
// key is missing.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	var wc wireCatalog
	dec := json.NewDecoder(r)
	if err := dec.Decode(&wc); err != nil {
		return nil, Errorf(ELOAD, "invalid catalog JSON: %v", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, Errorf(ELOAD, "invalid catalog JSON: trailing data after catalog")
	}
	if wc.Categories == nil {
		return nil, Errorf(ELOAD, "catalog missing %q", "categories")
	}

	c := NewCatalog()
	for i, wcat := range *wc.Categories {
		switch {
		case wcat.ID == nil:
			return nil, Errorf(ELOAD, "category %d missing %q", i, "id")
		case wcat.Name == nil:
			return nil, Errorf(ELOAD, "category %d missing %q", i, "name")
		case wcat.Sites == nil:
			return nil, Errorf(ELOAD, "category %d missing %q", i, "sites")
		}

		cat := Category{ID: *wcat.ID, Name: *wcat.Name, Sites: make([]Site, 0, len(*wcat.Sites))}
		for j, ws := range *wcat.Sites {
			var missing string
			switch {
			case ws.Name == nil:
				missing = "name"
			case ws.URL == nil:
				missing = "url"
			case ws.Icon == nil:
				missing = "icon"
			case ws.Description == nil:
				missing = "description"
			}
			if missing != "" {
				return nil, Errorf(ELOAD, "category %d site %d missing %q", i, j, missing)
			}
			cat.Sites = append(cat.Sites, Site{
				Name:        *ws.Name,
				URL:         *ws.URL,
				Icon:        *ws.Icon,
				Description: *ws.Description,
			})
		}
		c.Categories = append(c.Categories, cat)
	}

	return c, nil
}
