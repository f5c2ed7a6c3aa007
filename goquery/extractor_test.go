package goquery_test

import (
	"testing"

	"github.com/fwojciec/navdir"
	"github.com/fwojciec/navdir/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extract(t *testing.T, html string, opts ...goquery.Option) *navdir.Catalog {
	t.Helper()
	c, err := goquery.NewExtractor(opts...).Extract(html)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func categoryNames(c *navdir.Catalog) []string {
	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	return names
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts categories and sites in document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<h1 id="term-1">常用推荐</h1>
<div class="url-card">
	<img src="https://github.com/favicon.ico">
	<h4><a href="https://github.com">GitHub</a></h4>
	<p>code hosting</p>
</div>
<div class="url-card">
	<img src="https://gitee.com/favicon.ico">
	<h4><a href="https://gitee.com">Gitee</a></h4>
	<p>国内代码托管</p>
</div>
<h1 id="term-2">AI</h1>
<div class="url-card">
	<h4><a href="https://chat.openai.com">ChatGPT</a></h4>
	<p>assistant</p>
</div>
</body>
</html>`

		c := extract(t, html)

		require.Len(t, c.Categories, 2)
		assert.Equal(t, "term-1", c.Categories[0].ID)
		assert.Equal(t, "常用推荐", c.Categories[0].Name)
		assert.Equal(t, []navdir.Site{
			{Name: "GitHub", URL: "https://github.com", Icon: "https://github.com/favicon.ico", Description: "code hosting"},
			{Name: "Gitee", URL: "https://gitee.com", Icon: "https://gitee.com/favicon.ico", Description: "国内代码托管"},
		}, c.Categories[0].Sites)

		assert.Equal(t, "term-2", c.Categories[1].ID)
		assert.Equal(t, []navdir.Site{
			{Name: "ChatGPT", URL: "https://chat.openai.com", Icon: "", Description: "assistant"},
		}, c.Categories[1].Sites)
	})

	t.Run("admits featured heading and excludes contact and banner", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Alans的导航站</h1>
<h1>常用推荐</h1>
<div><h4><a href="https://one.example">One</a></h4></div>
<h1>联系我</h1>
<div><h4><a href="https://two.example">Two</a></h4></div>
</body></html>`

		c := extract(t, html)

		assert.Equal(t, []string{"常用推荐"}, categoryNames(c))
		// Sites after an excluded heading stay in the open category.
		require.Len(t, c.Categories[0].Sites, 2)
		assert.Equal(t, "https://two.example", c.Categories[0].Sites[1].URL)
	})

	t.Run("drops duplicate URLs within a category keeping the first", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Tools</h1>
<div><h4><a href="https://example.com">First</a></h4><p>first desc</p></div>
<div><h4><a href="https://example.com">Second</a></h4><p>second desc</p></div>
<div><h4><a href="https://other.example">Other</a></h4></div>
</body></html>`

		c := extract(t, html)

		require.Len(t, c.Categories, 1)
		sites := c.Categories[0].Sites
		require.Len(t, sites, 2)
		assert.Equal(t, "First", sites[0].Name)
		assert.Equal(t, "first desc", sites[0].Description)
		assert.Equal(t, "Other", sites[1].Name)
	})

	t.Run("allows the same URL in different categories", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>A</h1><div><h4><a href="https://example.com">X</a></h4></div>
<h1>B</h1><div><h4><a href="https://example.com">X</a></h4></div>
</body></html>`

		c := extract(t, html)

		require.Len(t, c.Categories, 2)
		assert.Len(t, c.Categories[0].Sites, 1)
		assert.Len(t, c.Categories[1].Sites, 1)
	})

	t.Run("missing paragraph and image yield empty strings", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Tools</h1>
<div><h4><a href="https://example.com">Bare</a></h4></div>
</body></html>`

		c := extract(t, html)

		require.Len(t, c.Categories, 1)
		site := c.Categories[0].Sites[0]
		assert.Equal(t, "", site.Description)
		assert.Equal(t, "", site.Icon)

		data, err := navdir.MarshalCatalog(c)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"description": ""`)
	})

	t.Run("site marker without container yields empty fields", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Tools</h1>
<p>not in a container</p>
<h4><a href="https://example.com">Loose</a></h4>
</body></html>`

		c := extract(t, html)

		require.Len(t, c.Categories, 1)
		assert.Equal(t, navdir.Site{Name: "Loose", URL: "https://example.com"}, c.Categories[0].Sites[0])
	})

	t.Run("uses the first paragraph and image of the container", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Tools</h1>
<div>
	<img src="https://example.com/a.png"><img src="https://example.com/b.png">
	<h4><a href="https://example.com">Site</a></h4>
	<p>  first paragraph  </p>
	<p>second paragraph</p>
</div>
</body></html>`

		c := extract(t, html)

		site := c.Categories[0].Sites[0]
		assert.Equal(t, "first paragraph", site.Description)
		assert.Equal(t, "https://example.com/a.png", site.Icon)
	})

	t.Run("skips links without an absolute scheme", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Tools</h1>
<div><h4><a href="/relative">Relative</a></h4></div>
<div><h4><a href="javascript:void(0)">Script</a></h4></div>
<div><h4><a href="mailto:me@example.com">Mail</a></h4></div>
<div><h4><a href="https://ok.example">OK</a></h4></div>
</body></html>`

		c := extract(t, html)

		require.Len(t, c.Categories, 1)
		require.Len(t, c.Categories[0].Sites, 1)
		assert.Equal(t, "https://ok.example", c.Categories[0].Sites[0].URL)
	})

	t.Run("skips site markers with no link", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Tools</h1>
<section><h4>No link here</h4></section>
</body></html>`

		c := extract(t, html)

		assert.Empty(t, c.Categories)
	})

	t.Run("resolves link from enclosing anchor", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Tools</h1>
<a href="https://gitee.com"><div><img src="https://gitee.com/i.png"><h4>Gitee</h4><p>mirror</p></div></a>
</body></html>`

		c := extract(t, html)

		require.Len(t, c.Categories, 1)
		assert.Equal(t, navdir.Site{Name: "Gitee", URL: "https://gitee.com", Icon: "https://gitee.com/i.png", Description: "mirror"}, c.Categories[0].Sites[0])
	})

	t.Run("resolves link from parent's descendants", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Tools</h1>
<div><span><h4>Docs</h4><a href="https://docs.example">open</a></span><p>manuals</p></div>
</body></html>`

		c := extract(t, html)

		require.Len(t, c.Categories, 1)
		assert.Equal(t, navdir.Site{Name: "Docs", URL: "https://docs.example", Description: "manuals"}, c.Categories[0].Sites[0])
	})

	t.Run("descendant link without href stops resolution", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Tools</h1>
<div><h4><a name="anchor">Named</a></h4><a href="https://sibling.example">x</a></div>
</body></html>`

		c := extract(t, html)

		assert.Empty(t, c.Categories)
	})

	t.Run("ignores site markers before the first category", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div><h4><a href="https://early.example">Early</a></h4></div>
<h1>Tools</h1>
<div><h4><a href="https://late.example">Late</a></h4></div>
</body></html>`

		c := extract(t, html)

		require.Len(t, c.Categories, 1)
		require.Len(t, c.Categories[0].Sites, 1)
		assert.Equal(t, "Late", c.Categories[0].Sites[0].Name)
	})

	t.Run("drops empty categories and numbers fallback ids by creation", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Empty</h1>
<h1>  Filled  </h1>
<div><h4><a href="https://example.com">X</a></h4></div>
<h1></h1>
<h1>Also Empty</h1>
</body></html>`

		c := extract(t, html)

		require.Len(t, c.Categories, 1)
		assert.Equal(t, "category-2", c.Categories[0].ID)
		assert.Equal(t, "Filled", c.Categories[0].Name)
	})

	t.Run("empty id attribute falls back to position", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 id="">Tools</h1>
<div><h4><a href="https://example.com">X</a></h4></div>
</body></html>`

		c := extract(t, html)

		assert.Equal(t, "category-1", c.Categories[0].ID)
	})

	t.Run("returns empty catalog for page without markers", func(t *testing.T) {
		t.Parallel()

		c := extract(t, `<html><body><p>nothing</p></body></html>`)

		assert.NotNil(t, c.Categories)
		assert.Empty(t, c.Categories)
	})

	t.Run("honors custom rules", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h2>Skip me</h2>
<h2>Links</h2>
<li><h3><a href="https://example.com">Example</a></h3><em>ignored</em><img src="https://example.com/i.png"></li>
</body></html>`

		c := extract(t, html, goquery.WithRules(goquery.Rules{
			CategoryTag:  "h2",
			SiteTag:      "h3",
			ContainerTag: "li",
			Exclude:      []string{"Skip me"},
		}))

		assert.Equal(t, []string{"Links"}, categoryNames(c))
		assert.Equal(t, "https://example.com/i.png", c.Categories[0].Sites[0].Icon)
	})

	t.Run("honors custom link resolvers", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Tools</h1>
<div><h4>Docs</h4><a href="https://docs.example">open</a></div>
</body></html>`

		c := extract(t, html, goquery.WithLinkResolvers(goquery.DescendantLink))

		assert.Empty(t, c.Categories)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>A</h1><div><h4><a href="https://a.example">A</a></h4><p>a</p></div>
<h1>B</h1><div><h4><a href="https://b.example">B</a></h4><img src="https://b.example/i.png"></div>
</body></html>`

		first, err := navdir.MarshalCatalog(extract(t, html))
		require.NoError(t, err)
		second, err := navdir.MarshalCatalog(extract(t, html))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestRules_Admit(t *testing.T) {
	t.Parallel()

	r := goquery.DefaultRules()

	assert.True(t, r.Admit("常用推荐"))
	assert.True(t, r.Admit("AI 工具"))
	assert.False(t, r.Admit("联系我"))
	assert.False(t, r.Admit("Alans的导航站"))
	assert.False(t, r.Admit(""))

	r.Exclude = append(r.Exclude, "常用推荐")
	assert.True(t, r.Admit("常用推荐"), "always-admitted titles win over exclusion")
}
