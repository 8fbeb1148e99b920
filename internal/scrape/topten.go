package scrape

import (
	"context"

	"github.com/brogergvhs/mangaread/internal/providers"
)

func topTenSummary(m *TopTenManga) *Summary { return &m.Summary }

var topTenColumns = []column[TopTenManga]{
	titleColumn(topTenSummary),
	slugColumn(topTenSummary),
	coverColumn(topTenSummary),
	{name: "chapter", kind: KindNumeric, set: func(m *TopTenManga, v Value) { m.Chapter = v.Num }},
	{name: "synopsis", kind: KindText, set: func(m *TopTenManga, v Value) { m.Synopsis = v.Str }},
	{name: "genres", kind: KindList, set: func(m *TopTenManga, v Value) { m.Genres = orEmpty(v.List) }},
}

// TopTen scrapes the home page spotlight slider.
func (s *Scraper) TopTen(ctx context.Context) ([]TopTenManga, error) {
	doc, sel, err := s.listing(ctx, providers.ListingTopTen, nil)
	if err != nil {
		return nil, err
	}

	return collect(doc, sel, topTenColumns, func(rank int) TopTenManga {
		return TopTenManga{Summary: Summary{Rank: rank}, Genres: []string{}}
	}, s.log), nil
}
