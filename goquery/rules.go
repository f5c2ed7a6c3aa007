package goquery

// Default heading conventions of the source page.
const (
	DefaultCategoryTag  = "h1"
	DefaultSiteTag      = "h4"
	DefaultContainerTag = "div"
)

// Headings the source page renders at category level that are not categories.
const (
	BannerTitle  = "Alans的导航站"
	ContactTitle = "联系我"

	// FeaturedTitle is always admitted as a category.
	FeaturedTitle = "常用推荐"
)

// Rules describes the page layout convention the extractor targets.
type Rules struct {
	// CategoryTag is the element name of category markers.
	CategoryTag string

	// SiteTag is the element name of site markers.
	SiteTag string

	// ContainerTag is the element name of the enclosing block searched
	// for a site's description and icon.
	ContainerTag string

	// Exclude lists category-level titles that never start a category.
	Exclude []string

	// AlwaysAdmit lists titles admitted even when they appear in Exclude.
	AlwaysAdmit []string
}

// DefaultRules returns the rules for the source page's layout.
func DefaultRules() Rules {
	return Rules{
		CategoryTag:  DefaultCategoryTag,
		SiteTag:      DefaultSiteTag,
		ContainerTag: DefaultContainerTag,
		Exclude:      []string{BannerTitle, ContactTitle},
		AlwaysAdmit:  []string{FeaturedTitle},
	}
}

// withDefaults fills empty tag names from DefaultRules.
func (r Rules) withDefaults() Rules {
	if r.CategoryTag == "" {
		r.CategoryTag = DefaultCategoryTag
	}
	if r.SiteTag == "" {
		r.SiteTag = DefaultSiteTag
	}
	if r.ContainerTag == "" {
		r.ContainerTag = DefaultContainerTag
	}
	return r
}

// Admit reports whether a category-marker title starts a new category.
// Empty titles are never admitted.
func (r Rules) Admit(title string) bool {
	if title == "" {
		return false
	}
	if contains(r.AlwaysAdmit, title) {
		return true
	}
	return !contains(r.Exclude, title)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
