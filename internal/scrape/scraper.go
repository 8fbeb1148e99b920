package scrape

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/brogergvhs/mangaread/internal/providers"
	"github.com/brogergvhs/mangaread/internal/util"
)

// Fetcher performs the single outbound GET of a scrape.
type Fetcher interface {
	Fetch(ctx context.Context, target string) (*util.Page, error)
}

type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Scraper is stateless apart from its fetcher, so one value can serve
// concurrent calls.
type Scraper struct {
	fetcher  Fetcher
	provider providers.Provider
	log      Logger
}

func New(f Fetcher, p providers.Provider, log Logger) *Scraper {
	if log == nil {
		log = nopLogger{}
	}

	return &Scraper{
		fetcher:  f,
		provider: p,
		log:      log,
	}
}

func (s *Scraper) Provider() providers.Provider {
	return s.provider
}

func (s *Scraper) fetchDOM(ctx context.Context, target string) (*goquery.Document, string, error) {
	page, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, "", err
	}

	doc, err := ParseBytes(page.Body)
	if err != nil {
		return nil, "", err
	}

	return doc, page.URL, nil
}

// listing resolves the selector map, expands its templates and loads the page.
func (s *Scraper) listing(ctx context.Context, l providers.Listing, vars providers.Vars) (*goquery.Document, providers.Selectors, error) {
	sel, err := s.provider.Listing(l)
	if err != nil {
		return nil, providers.Selectors{}, err
	}
	sel.Container = providers.Expand(sel.Container, vars)

	target := s.provider.URL(sel.Path, vars)
	s.log.Debugf("scraping %s from %s", l, target)

	doc, _, err := s.fetchDOM(ctx, target)
	if err != nil {
		return nil, providers.Selectors{}, err
	}

	return doc, sel, nil
}
