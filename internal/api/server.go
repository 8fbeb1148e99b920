// Package api serves scraped listings over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brogergvhs/mangaread/internal/listing"
	"github.com/brogergvhs/mangaread/internal/providers"
	"github.com/brogergvhs/mangaread/internal/scrape"
	"github.com/brogergvhs/mangaread/internal/ui"
)

type Options struct {
	Registry *providers.Registry
	// Provider is used when a request carries no ?provider= parameter.
	Provider string
	Fetcher  scrape.Fetcher
	Logger   *ui.Logger
}

type Server struct {
	registry *providers.Registry
	provider providers.Provider
	fetcher  scrape.Fetcher
	log      *ui.Logger
	metrics  *Metrics
}

func NewServer(opts Options) (*Server, error) {
	reg := opts.Registry
	if reg == nil {
		reg = providers.Default()
	}

	name := opts.Provider
	if name == "" {
		name = providers.DefaultProvider
	}
	p, err := reg.Lookup(name)
	if err != nil {
		return nil, err
	}

	if opts.Fetcher == nil {
		return nil, fmt.Errorf("api: fetcher is required")
	}

	log := opts.Logger
	if log == nil {
		log = ui.NewLogger(false)
	}

	return &Server{
		registry: reg,
		provider: p,
		fetcher:  opts.Fetcher,
		log:      log,
		metrics:  NewMetrics(),
	}, nil
}

func (s *Server) Metrics() *Metrics {
	return s.metrics
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), s.accessLog())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "provider": s.provider.Name})
	})
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	v1 := r.Group("/api/v1")
	v1.GET("/popular", s.popular)
	v1.GET("/top-10", s.topTen)
	v1.GET("/most-viewed/:chart", s.mostViewed)
	v1.GET("/search", s.search)
	v1.GET("/completed", s.completed)
	v1.GET("/manga/*slug", s.manga)
	v1.GET("/random", s.random)

	return r
}

// scraper builds the per-request scraper for the provider named by
// ?provider=, falling back to the server default.
func (s *Server) scraper(c *gin.Context) (*scrape.Scraper, bool) {
	p := s.provider
	if name := c.Query("provider"); name != "" {
		var err error
		if p, err = s.registry.Lookup(name); err != nil {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return nil, false
		}
	}

	return scrape.New(s.fetcher, p, s.log), true
}

type window struct {
	offset, limit int
}

func parseWindow(c *gin.Context, maxLimit int) (window, bool) {
	w := window{offset: 0, limit: listing.DefaultLimit}

	var ok bool
	if w.offset, ok = intQuery(c, "offset", w.offset); !ok {
		return w, false
	}
	if w.limit, ok = intQuery(c, "limit", w.limit); !ok {
		return w, false
	}
	if w.limit > maxLimit {
		abortWithError(c, http.StatusUnprocessableEntity, fmt.Sprintf("limit must be less than or equal to %d", maxLimit))
		return w, false
	}

	return w, true
}

func intQuery(c *gin.Context, key string, def int) (int, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, fmt.Sprintf("%s must be a valid integer", key))
		return 0, false
	}

	return n, true
}

// run times fn against the metrics and turns its error into a response.
func run[T any](s *Server, c *gin.Context, sc *scrape.Scraper, l providers.Listing, fn func(ctx context.Context) ([]T, error)) ([]T, bool) {
	start := time.Now()
	records, err := fn(c.Request.Context())
	s.metrics.recordScrape(sc.Provider().Name, string(l), start, len(records), err)

	if err != nil {
		status := statusFor(err)
		if status >= 500 {
			s.log.Errorf("scrape %s failed: %v", l, err)
		}
		abortWithError(c, status, err.Error())
		return nil, false
	}

	return records, true
}

func respondWindow[T any](c *gin.Context, records []T, w window) {
	c.JSON(http.StatusOK, listing.Window(records, w.offset, w.limit))
}

func (s *Server) popular(c *gin.Context) {
	w, ok := parseWindow(c, listing.ChartLimit)
	if !ok {
		return
	}
	sc, ok := s.scraper(c)
	if !ok {
		return
	}

	records, ok := run(s, c, sc, providers.ListingPopular, sc.Popular)
	if !ok {
		return
	}
	respondWindow(c, records, w)
}

func (s *Server) topTen(c *gin.Context) {
	w, ok := parseWindow(c, listing.ChartLimit)
	if !ok {
		return
	}
	sc, ok := s.scraper(c)
	if !ok {
		return
	}

	records, ok := run(s, c, sc, providers.ListingTopTen, sc.TopTen)
	if !ok {
		return
	}
	respondWindow(c, records, w)
}

func (s *Server) mostViewed(c *gin.Context) {
	chart, err := scrape.ParseChart(c.Param("chart"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, capitalize(strings.TrimPrefix(err.Error(), scrape.ErrInvalidChart.Error()+": ")))
		return
	}

	w, ok := parseWindow(c, listing.ChartLimit)
	if !ok {
		return
	}
	sc, ok := s.scraper(c)
	if !ok {
		return
	}

	records, ok := run(s, c, sc, providers.ListingMostViewed, func(ctx context.Context) ([]scrape.MostViewedManga, error) {
		return sc.MostViewed(ctx, chart)
	})
	if !ok {
		return
	}
	respondWindow(c, records, w)
}

func (s *Server) search(c *gin.Context) {
	keyword := c.Query("keyword")
	if strings.TrimSpace(keyword) == "" {
		abortWithError(c, http.StatusUnprocessableEntity, "keyword is required")
		return
	}

	page, ok := intQuery(c, "page", 1)
	if !ok {
		return
	}
	w, ok := parseWindow(c, listing.SearchLimit)
	if !ok {
		return
	}
	sc, ok := s.scraper(c)
	if !ok {
		return
	}

	records, ok := run(s, c, sc, providers.ListingSearch, func(ctx context.Context) ([]scrape.SearchResult, error) {
		return sc.Search(ctx, keyword, page)
	})
	if !ok {
		return
	}
	respondWindow(c, records, w)
}

func (s *Server) completed(c *gin.Context) {
	raw := c.DefaultQuery("sort", string(scrape.SortDefault))
	sort, err := scrape.ParseSort(raw)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	page, ok := intQuery(c, "page", 1)
	if !ok {
		return
	}
	w, ok := parseWindow(c, listing.SearchLimit)
	if !ok {
		return
	}
	sc, ok := s.scraper(c)
	if !ok {
		return
	}

	records, ok := run(s, c, sc, providers.ListingCompleted, func(ctx context.Context) ([]scrape.SearchResult, error) {
		return sc.Completed(ctx, sort, page)
	})
	if !ok {
		return
	}
	if len(records) == 0 {
		abortWithError(c, http.StatusNotFound, fmt.Sprintf("Manga not found with sort (%s), try another!", raw))
		return
	}
	respondWindow(c, records, w)
}

func (s *Server) manga(c *gin.Context) {
	sc, ok := s.scraper(c)
	if !ok {
		return
	}
	s.detail(c, sc, "manga", func(ctx context.Context) (*scrape.MangaDetail, error) {
		return sc.Manga(ctx, c.Param("slug"))
	})
}

func (s *Server) random(c *gin.Context) {
	sc, ok := s.scraper(c)
	if !ok {
		return
	}
	s.detail(c, sc, "random", sc.Random)
}

func (s *Server) detail(c *gin.Context, sc *scrape.Scraper, name string, fn func(ctx context.Context) (*scrape.MangaDetail, error)) {
	start := time.Now()
	m, err := fn(c.Request.Context())

	n := 0
	if m != nil {
		n = 1
	}
	s.metrics.recordScrape(sc.Provider().Name, name, start, n, err)

	if err != nil {
		status := statusFor(err)
		if status >= 500 {
			s.log.Errorf("scrape %s failed: %v", name, err)
		}
		abortWithError(c, status, err.Error())
		return
	}

	c.JSON(http.StatusOK, m)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
