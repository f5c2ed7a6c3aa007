// Package koanf loads navdir configuration from an optional YAML file
// overlaid with NAVDIR_* environment variables.
package koanf

import (
	"os"
	"strings"
	"time"

	"github.com/fwojciec/navdir"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "navdir.yaml"

// EnvPrefix prefixes every environment override. A double underscore
// separates nested keys: NAVDIR_EXTRACT__SITE_TAG sets extract.site_tag.
const EnvPrefix = "NAVDIR_"

// Config is the full navdir configuration.
type Config struct {
	SourceURL  string        `koanf:"source_url"`
	Output     string        `koanf:"output"`
	StartDelay time.Duration `koanf:"start_delay"`
	Timeout    time.Duration `koanf:"timeout"`
	UserAgent  string        `koanf:"user_agent"`
	Retries    int           `koanf:"retries"`
	Browser    bool          `koanf:"browser"`
	Database   string        `koanf:"database"`
	Addr       string        `koanf:"addr"`
	Extract    ExtractConfig `koanf:"extract"`
}

// ExtractConfig holds the heading conventions of the source page.
type ExtractConfig struct {
	CategoryTag  string   `koanf:"category_tag"`
	SiteTag      string   `koanf:"site_tag"`
	ContainerTag string   `koanf:"container_tag"`
	Exclude      []string `koanf:"exclude"`
	AlwaysAdmit  []string `koanf:"always_admit"`
}

// Default values.
const (
	DefaultSourceURL  = "https://alans.site/"
	DefaultOutput     = "data/navigation.json"
	DefaultStartDelay = time.Second
	DefaultTimeout    = 10 * time.Second
	DefaultUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultAddr       = ":8080"
)

var (
	defaultExclude     = []string{"Alans的导航站", "联系我"}
	defaultAlwaysAdmit = []string{"常用推荐"}
)

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		SourceURL:  DefaultSourceURL,
		Output:     DefaultOutput,
		StartDelay: DefaultStartDelay,
		Timeout:    DefaultTimeout,
		UserAgent:  DefaultUserAgent,
		Addr:       DefaultAddr,
		Extract: ExtractConfig{
			CategoryTag:  "h1",
			SiteTag:      "h4",
			ContainerTag: "div",
			Exclude:      append([]string(nil), defaultExclude...),
			AlwaysAdmit:  append([]string(nil), defaultAlwaysAdmit...),
		},
	}
}

// Load reads configuration from the YAML file at path, if it exists, then
// overlays NAVDIR_* environment variables on top of the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, navdir.Errorf(navdir.EINVALID, "reading config %s: %v", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, navdir.Errorf(navdir.EINVALID, "accessing config %s: %v", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, navdir.Errorf(navdir.EINVALID, "loading env overrides: %v", err)
	}

	cfg := DefaultConfig()
	// Lists are replaced wholesale rather than merged element by element.
	if k.Exists("extract.exclude") {
		cfg.Extract.Exclude = nil
	}
	if k.Exists("extract.always_admit") {
		cfg.Extract.AlwaysAdmit = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, navdir.Errorf(navdir.EINVALID, "decoding config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps NAVDIR_EXTRACT__SITE_TAG to extract.site_tag.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.SourceURL == "" {
		return navdir.Errorf(navdir.EINVALID, "source_url is required")
	}
	if c.Output == "" {
		return navdir.Errorf(navdir.EINVALID, "output is required")
	}
	if c.StartDelay < 0 {
		return navdir.Errorf(navdir.EINVALID, "start_delay must be non-negative")
	}
	if c.Timeout < 0 {
		return navdir.Errorf(navdir.EINVALID, "timeout must be non-negative")
	}
	if c.Retries < 0 {
		return navdir.Errorf(navdir.EINVALID, "retries must be non-negative")
	}
	return nil
}
