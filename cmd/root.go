package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/brogergvhs/mangaread/internal/config"
	"github.com/brogergvhs/mangaread/internal/providers"
	"github.com/brogergvhs/mangaread/internal/scrape"
	"github.com/brogergvhs/mangaread/internal/ui"
	"github.com/brogergvhs/mangaread/internal/util"
)

var (
	flagIgnoreConfig bool
	flagConfigPath   string
	flagDebug        bool
	flagProvider     string
	flagOutput       string

	// headers/auth
	flagTimeout          time.Duration
	flagCookie           string
	flagCookieFile       string
	flagUserAgent        string
	flagCloudflareBypass bool
)

var rootCmd = &cobra.Command{
	Use:           "mangaread",
	Short:         "Scrape manga catalog listings as JSON or YAML",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagDebug, "debug", false, "enable debug logging")
	pf.BoolVar(&flagIgnoreConfig, "ignore-config", false, "ignore config and use only CLI flags")
	pf.StringVar(&flagConfigPath, "config", "", "path to a config file (default "+config.ConfigPath()+")")
	pf.StringVar(&flagProvider, "provider", "", "catalog provider (mangareader, myanimelist)")
	pf.StringVarP(&flagOutput, "output", "o", "json", "output format: json or yaml")

	pf.DurationVar(&flagTimeout, "timeout", 0, "HTTP timeout per page (e.g. 15s)")
	pf.StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	pf.StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	pf.StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	pf.BoolVar(&flagCloudflareBypass, "cloudflare-bypass", false, "wrap requests with Cloudflare bypass headers")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session is the per-invocation state every scraping command starts from.
type session struct {
	cfg      *config.Config
	log      *ui.Logger
	fetcher  scrape.Fetcher
	provider providers.Provider
}

func loadOptions() config.Options {
	return config.Options{
		IgnoreConfig:     flagIgnoreConfig,
		Path:             flagConfigPath,
		Provider:         flagProvider,
		Timeout:          flagTimeout,
		Debug:            flagDebug,
		UserAgent:        flagUserAgent,
		Cookie:           flagCookie,
		CookieFile:       flagCookieFile,
		CloudflareBypass: flagCloudflareBypass,
	}
}

func newSession(opts config.Options) (*session, error) {
	cfg, usedPath, err := config.LoadMerged(opts)
	if err != nil {
		return nil, err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	if usedPath != "" {
		logSvc.Debugf("config file: %s", usedPath)
	}

	p, err := providers.Default().Lookup(cfg.Provider)
	if err != nil {
		return nil, err
	}

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          cfg.Timeout,
		UserAgent:        util.PickUserAgent(cfg.UserAgent),
		Cookie:           cfg.Cookie,
		CookieFile:       cfg.CookieFile,
		CloudflareBypass: cfg.CloudflareBypass,
		DebugLogger:      logSvc,
	})
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:      cfg,
		log:      logSvc,
		fetcher:  util.NewFetcher(client),
		provider: p,
	}, nil
}

func (s *session) scraper() *scrape.Scraper {
	return scrape.New(s.fetcher, s.provider, s.log)
}
