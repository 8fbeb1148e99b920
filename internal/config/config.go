package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/brogergvhs/mangaread/internal/providers"
)

type Config struct {
	Provider string        `yaml:"provider"`
	Timeout  time.Duration `yaml:"timeout"`
	Debug    bool          `yaml:"debug"`

	UserAgent        string `yaml:"user_agent"`
	Cookie           string `yaml:"cookie"`
	CookieFile       string `yaml:"cookie_file"`
	CloudflareBypass bool   `yaml:"cloudflare_bypass"`

	Listen        string `yaml:"listen"`
	SearchWorkers int    `yaml:"search_workers"`
}

// Options carries CLI flag values; zero values mean "not set".
type Options struct {
	IgnoreConfig     bool
	Path             string
	Provider         string
	Timeout          time.Duration
	Debug            bool
	UserAgent        string
	Cookie           string
	CookieFile       string
	CloudflareBypass bool
	Listen           string
	SearchWorkers    int
}

func DefaultConfig() *Config {
	return &Config{
		Provider:      providers.DefaultProvider,
		Timeout:       30 * time.Second,
		Listen:        ":8000",
		SearchWorkers: 3,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadMerged layers defaults, the config file and CLI options, in that order.
// A missing file is not an error; the returned path is empty then.
func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "", nil
	}

	path := opts.Path
	if path == "" {
		path = ConfigPath()
	}

	cfg, err := loadYAML(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		path = ""
	} else if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", path, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, path, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Provider != "" {
		c.Provider = o.Provider
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.Debug {
		c.Debug = true
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.CloudflareBypass {
		c.CloudflareBypass = true
	}
	if o.Listen != "" {
		c.Listen = o.Listen
	}
	if o.SearchWorkers != 0 {
		c.SearchWorkers = o.SearchWorkers
	}
}

func normalizeDefaults(c *Config) {
	if c.Provider == "" {
		c.Provider = providers.DefaultProvider
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.Listen == "" {
		c.Listen = ":8000"
	}
	if c.SearchWorkers < 1 {
		c.SearchWorkers = 1
	}
}

func (c *Config) Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, " -provider: %s\n", c.Provider)
	_, _ = fmt.Fprintf(w, " -timeout: %s\n", c.Timeout)
	if c.Debug {
		_, _ = fmt.Fprintf(w, " -debug: %t\n", c.Debug)
	}
	if c.UserAgent != "" {
		_, _ = fmt.Fprintf(w, " -user_agent: %s\n", c.UserAgent)
	}
	if c.CookieFile != "" {
		_, _ = fmt.Fprintf(w, " -cookie_file: %s\n", c.CookieFile)
	}
	if c.CloudflareBypass {
		_, _ = fmt.Fprintf(w, " -cloudflare_bypass: %t\n", c.CloudflareBypass)
	}
	_, _ = fmt.Fprintf(w, " -listen: %s\n", c.Listen)
	_, _ = fmt.Fprintf(w, " -search_workers: %d\n", c.SearchWorkers)
}
