package scrape

import (
	"context"
	"fmt"

	"github.com/brogergvhs/mangaread/internal/providers"
)

func mostViewedSummary(m *MostViewedManga) *Summary { return &m.Summary }

var mostViewedColumns = []column[MostViewedManga]{
	titleColumn(mostViewedSummary),
	slugColumn(mostViewedSummary),
	{name: "cover", kind: KindAttr, attr: "src", set: func(m *MostViewedManga, v Value) { m.Cover = HighResCover(v.Str) }},
	{name: "views", kind: KindNumeric, set: func(m *MostViewedManga, v Value) { m.Views = v.Num }},
	{name: "chapters", kind: KindNumeric, set: func(m *MostViewedManga, v Value) { m.Chapters = v.Num }},
	{name: "volumes", kind: KindNumeric, set: func(m *MostViewedManga, v Value) { m.Volumes = v.Num }},
	// nil stays nil here; see MostViewedManga.
	{name: "genres", kind: KindList, set: func(m *MostViewedManga, v Value) { m.Genres = v.List }},
}

// MostViewed scrapes one sidebar chart of the home page.
func (s *Scraper) MostViewed(ctx context.Context, chart Chart) ([]MostViewedManga, error) {
	if !chart.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChart, chart)
	}

	doc, sel, err := s.listing(ctx, providers.ListingMostViewed, providers.Vars{"chart": string(chart)})
	if err != nil {
		return nil, err
	}

	return collect(doc, sel, mostViewedColumns, func(rank int) MostViewedManga {
		return MostViewedManga{Summary: Summary{Rank: rank}}
	}, s.log), nil
}
