package scrape

import (
	"context"

	"github.com/brogergvhs/mangaread/internal/providers"
)

func popularSummary(m *PopularManga) *Summary { return &m.Summary }

var popularColumns = []column[PopularManga]{
	titleColumn(popularSummary),
	slugColumn(popularSummary),
	coverColumn(popularSummary),
	{name: "rating", kind: KindFloat, set: func(m *PopularManga, v Value) { m.Rating = v.Num }},
	{name: "chapters", kind: KindNumeric, set: func(m *PopularManga, v Value) { m.Chapters = v.Num }},
	{name: "volumes", kind: KindNumeric, set: func(m *PopularManga, v Value) { m.Volumes = v.Num }},
}

// Popular scrapes the trending carousel of the home page.
func (s *Scraper) Popular(ctx context.Context) ([]PopularManga, error) {
	doc, sel, err := s.listing(ctx, providers.ListingPopular, nil)
	if err != nil {
		return nil, err
	}

	return collect(doc, sel, popularColumns, func(rank int) PopularManga {
		return PopularManga{Summary: Summary{Rank: rank}}
	}, s.log), nil
}
