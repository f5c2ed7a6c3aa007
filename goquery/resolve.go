package goquery

import "github.com/PuerkitoBio/goquery"

// LinkResolver locates the link element belonging to a site marker.
// It returns an empty selection when it finds nothing.
type LinkResolver func(marker *goquery.Selection) *goquery.Selection

// DescendantLink finds the first link inside the marker.
func DescendantLink(marker *goquery.Selection) *goquery.Selection {
	return marker.Find("a").First()
}

// AncestorLink finds the nearest link enclosing the marker.
func AncestorLink(marker *goquery.Selection) *goquery.Selection {
	return marker.Closest("a")
}

// ParentLink finds the first link anywhere under the marker's parent.
func ParentLink(marker *goquery.Selection) *goquery.Selection {
	return marker.Parent().Find("a").First()
}

// DefaultLinkResolvers returns the resolution order used by the extractor.
func DefaultLinkResolvers() []LinkResolver {
	return []LinkResolver{DescendantLink, AncestorLink, ParentLink}
}

// resolveLink tries each resolver in order and returns the first link found.
// A found link without an href still stops the chain.
func resolveLink(marker *goquery.Selection, resolvers []LinkResolver) (href string, ok bool) {
	for _, resolve := range resolvers {
		link := resolve(marker)
		if link.Length() == 0 {
			continue
		}
		return link.Attr("href")
	}
	return "", false
}
