package koanf_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/navdir"
	"github.com/fwojciec/navdir/koanf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "navdir.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	t.Parallel()

	cfg, err := koanf.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, koanf.DefaultConfig(), cfg)
	assert.Equal(t, "https://alans.site/", cfg.SourceURL)
	assert.Equal(t, "data/navigation.json", cfg.Output)
	assert.Equal(t, time.Second, cfg.StartDelay)
	assert.Equal(t, 0, cfg.Retries)
	assert.Equal(t, []string{"Alans的导航站", "联系我"}, cfg.Extract.Exclude)
	assert.Equal(t, []string{"常用推荐"}, cfg.Extract.AlwaysAdmit)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
source_url: https://example.com/nav
start_delay: 250ms
retries: 2
extract:
  site_tag: h3
  exclude:
    - About
`)

	cfg, err := koanf.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/nav", cfg.SourceURL)
	assert.Equal(t, 250*time.Millisecond, cfg.StartDelay)
	assert.Equal(t, 2, cfg.Retries)
	assert.Equal(t, "h3", cfg.Extract.SiteTag)
	assert.Equal(t, "h1", cfg.Extract.CategoryTag)
	assert.Equal(t, []string{"About"}, cfg.Extract.Exclude)
	assert.Equal(t, "data/navigation.json", cfg.Output)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "source_url: [unterminated")

	_, err := koanf.Load(path)

	assert.Equal(t, navdir.EINVALID, navdir.ErrorCode(err))
}

func TestLoad_RejectsNegativeRetries(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "retries: -1\n")

	_, err := koanf.Load(path)

	assert.Equal(t, navdir.EINVALID, navdir.ErrorCode(err))
	assert.Contains(t, navdir.ErrorMessage(err), "retries")
}

// Environment tests cannot run in parallel because t.Setenv mutates the
// process environment.
func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "output: from-file.json\naddr: \":9000\"\n")
	t.Setenv("NAVDIR_OUTPUT", "from-env.json")
	t.Setenv("NAVDIR_EXTRACT__CONTAINER_TAG", "section")

	cfg, err := koanf.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env.json", cfg.Output)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "section", cfg.Extract.ContainerTag)
}

func TestLoad_EnvDuration(t *testing.T) {
	t.Setenv("NAVDIR_TIMEOUT", "3s")

	cfg, err := koanf.Load("")

	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
}
