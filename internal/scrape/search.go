package scrape

import (
	"context"
	"fmt"
	"strconv"

	"github.com/brogergvhs/mangaread/internal/providers"
	"github.com/brogergvhs/mangaread/internal/util"
)

var searchColumns = []column[SearchResult]{
	titleColumn(func(r *SearchResult) *Summary { return &r.Summary }),
	{name: "link", kind: KindAttr, attr: "href", set: func(r *SearchResult, v Value) {
		r.Slug = SlugFromLink(v.Str)
		r.ID = numericID(r.Slug)
	}},
	coverColumn(func(r *SearchResult) *Summary { return &r.Summary }),
	{name: "langs", kind: KindText, set: func(r *SearchResult, v Value) { r.Langs = SplitLangs(v.Str) }},
	{name: "genres", kind: KindList, set: func(r *SearchResult, v Value) { r.Genres = orEmpty(v.List) }},
	{name: "chapters", kind: KindText, set: func(r *SearchResult, v Value) { r.Chapters = ParseChapterLabel(v.Str) }},
}

func newSearchResult(rank int) SearchResult {
	return SearchResult{Summary: Summary{Rank: rank}, Genres: []string{}}
}

// Search scrapes one page of keyword results. The keyword is slugified with
// "+" the way the site's own search box submits it.
func (s *Scraper) Search(ctx context.Context, keyword string, page int) ([]SearchResult, error) {
	kw := util.Slugify(keyword, "+")
	if kw == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptyKeyword, keyword)
	}
	if page < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}

	doc, sel, err := s.listing(ctx, providers.ListingSearch, providers.Vars{
		"keyword": kw,
		"page":    strconv.Itoa(page),
	})
	if err != nil {
		return nil, err
	}

	return collect(doc, sel, searchColumns, newSearchResult, s.log), nil
}

// Completed scrapes one page of the finished-series listing.
func (s *Scraper) Completed(ctx context.Context, sort SortKey, page int) ([]SearchResult, error) {
	if !sort.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSort, sort)
	}
	if page < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}

	doc, sel, err := s.listing(ctx, providers.ListingCompleted, providers.Vars{
		"sort": string(sort),
		"page": strconv.Itoa(page),
	})
	if err != nil {
		return nil, err
	}

	return collect(doc, sel, searchColumns, newSearchResult, s.log), nil
}
