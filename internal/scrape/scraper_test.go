package scrape

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brogergvhs/mangaread/internal/providers"
	"github.com/brogergvhs/mangaread/internal/util"
)

func assertDenseRanks[T any](t *testing.T, records []T, rank func(T) int) {
	t.Helper()
	for i, r := range records {
		assert.Equal(t, i+1, rank(r), "rank at index %d", i)
	}
}

func TestPopular(t *testing.T) {
	s, f := newTestScraper(map[string]string{homeURL: homeHTML})

	got, err := s.Popular(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{homeURL}, f.called)
	assertDenseRanks(t, got, func(m PopularManga) int { return m.Rank })

	assert.Equal(t, PopularManga{
		Summary: Summary{
			Rank:  1,
			Title: ptr("Chainsaw Man"),
			Slug:  ptr("chainsaw-man-96"),
			Cover: ptr("https://img.example/csm.jpg"),
		},
		Rating:   ptr(8.7),
		Chapters: ptr(170.0),
		Volumes:  ptr(16.0),
	}, got[0])

	// "N/A" is not a rating and "1,204" is not a number.
	assert.Equal(t, ptr("Blue Lock"), got[1].Title)
	assert.Nil(t, got[1].Slug)
	assert.Nil(t, got[1].Rating)
	assert.Nil(t, got[1].Chapters)
	assert.Nil(t, got[1].Volumes)

	assert.Equal(t, PopularManga{Summary: Summary{Rank: 3}}, got[2], "empty item is still emitted")
}

func TestTopTen(t *testing.T) {
	s, _ := newTestScraper(map[string]string{homeURL: homeHTML})

	got, err := s.TopTen(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assertDenseRanks(t, got, func(m TopTenManga) int { return m.Rank })

	assert.Equal(t, ptr("One Piece"), got[0].Title)
	assert.Equal(t, ptr("one-piece-3"), got[0].Slug)
	assert.Equal(t, ptr("https://img.example/one-piece.jpg"), got[0].Cover)
	assert.Equal(t, ptr(1100.0), got[0].Chapter)
	assert.Equal(t, ptr("Gol D. Roger was known as the Pirate King."), got[0].Synopsis)
	assert.Equal(t, []string{"Action", "Adventure"}, got[0].Genres)

	assert.Equal(t, ptr("berserk-2"), got[1].Slug)
	assert.Nil(t, got[1].Chapter)
	assert.Nil(t, got[1].Synopsis)
	assert.NotNil(t, got[1].Genres)
	assert.Empty(t, got[1].Genres)
}

func TestMostViewed(t *testing.T) {
	s, _ := newTestScraper(map[string]string{homeURL: homeHTML})

	got, err := s.MostViewed(context.Background(), ChartToday)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assertDenseRanks(t, got, func(m MostViewedManga) int { return m.Rank })

	assert.Equal(t, MostViewedManga{
		Summary: Summary{
			Rank:  1,
			Title: ptr("Naruto"),
			Slug:  ptr("naruto-7"),
			Cover: ptr("https://img.example/500x800/naruto.jpg"),
		},
		Views:    ptr(85310.0),
		Chapters: ptr(700.0),
		Volumes:  ptr(72.0),
		Genres:   []string{"Action", "Martial Arts"},
	}, got[0])

	assert.Equal(t, ptr("Untitled"), got[1].Title)
	assert.Nil(t, got[1].Slug)
	assert.Nil(t, got[1].Cover)
	assert.Nil(t, got[1].Genres)
}

func TestMostViewed_ChartScopesContainer(t *testing.T) {
	s, _ := newTestScraper(map[string]string{homeURL: homeHTML})

	week, err := s.MostViewed(context.Background(), ChartWeek)
	require.NoError(t, err)
	require.Len(t, week, 1)
	assert.Equal(t, ptr("bleach-5"), week[0].Slug)

	month, err := s.MostViewed(context.Background(), ChartMonth)
	require.NoError(t, err)
	assert.NotNil(t, month)
	assert.Empty(t, month, "missing chart section is an empty result")
}

func TestMostViewed_InvalidChartSkipsFetch(t *testing.T) {
	s, f := newTestScraper(map[string]string{homeURL: homeHTML})

	_, err := s.MostViewed(context.Background(), Chart("decade"))
	require.ErrorIs(t, err, ErrInvalidChart)
	assert.Empty(t, f.called)
}

func TestGenres_NullVersusEmpty(t *testing.T) {
	s, _ := newTestScraper(map[string]string{homeURL: homeHTML})

	top, err := s.TopTen(context.Background())
	require.NoError(t, err)
	viewed, err := s.MostViewed(context.Background(), ChartToday)
	require.NoError(t, err)

	topJSON, err := json.Marshal(top[1])
	require.NoError(t, err)
	viewedJSON, err := json.Marshal(viewed[1])
	require.NoError(t, err)

	assert.Contains(t, string(topJSON), `"genres":[]`)
	assert.Contains(t, string(viewedJSON), `"genres":null`)
}

func TestMissingContainer(t *testing.T) {
	s, _ := newTestScraper(map[string]string{
		homeURL: `<html><body><p>maintenance</p></body></html>`,
		"https://mangareader.to/search?keyword=x&page=1": `<html><body></body></html>`,
	})
	ctx := context.Background()

	popular, err := s.Popular(ctx)
	require.NoError(t, err)
	assert.NotNil(t, popular)
	assert.Empty(t, popular)

	top, err := s.TopTen(ctx)
	require.NoError(t, err)
	assert.Empty(t, top)

	viewed, err := s.MostViewed(ctx, ChartWeek)
	require.NoError(t, err)
	assert.Empty(t, viewed)

	found, err := s.Search(ctx, "x", 1)
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestTransportErrorPropagates(t *testing.T) {
	cause := &util.TransportError{URL: homeURL, StatusCode: 503, Err: errors.New("503 Service Unavailable")}
	f := &fakeFetcher{err: cause}
	s := New(f, providers.MangaReader(), nil)

	_, err := s.Popular(context.Background())
	require.Error(t, err)

	var te *util.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 503, te.StatusCode)
	assert.Len(t, f.called, 1, "no retry")
}

func TestSearch(t *testing.T) {
	s, f := newTestScraper(map[string]string{
		"https://mangareader.to/search?keyword=one+piece&page=2": searchHTML,
	})

	got, err := s.Search(context.Background(), "  One Piece! ", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"https://mangareader.to/search?keyword=one+piece&page=2"}, f.called)
	assertDenseRanks(t, got, func(r SearchResult) int { return r.Rank })

	assert.Equal(t, SearchResult{
		Summary: Summary{
			Rank:  1,
			Title: ptr("One Piece"),
			Slug:  ptr("one-piece-3"),
			Cover: ptr("https://img.example/op.jpg"),
		},
		ID:       ptr(3),
		Langs:    []string{"EN", "JA"},
		Genres:   []string{"Action", "Comedy"},
		Chapters: &ChapterInfo{Total: "45", Lang: "EN"},
	}, got[0])

	assert.Equal(t, ptr("one-piece-party"), got[1].Slug)
	assert.Nil(t, got[1].ID)
	assert.Nil(t, got[1].Langs)
	assert.Nil(t, got[1].Chapters, "absent label yields no chapter info at all")
	assert.NotNil(t, got[1].Genres)
	assert.Empty(t, got[1].Genres)
}

func TestSearch_Validation(t *testing.T) {
	s, f := newTestScraper(nil)

	_, err := s.Search(context.Background(), " !? ", 1)
	assert.ErrorIs(t, err, ErrEmptyKeyword)

	_, err = s.Search(context.Background(), "naruto", 0)
	assert.ErrorIs(t, err, ErrInvalidPage)

	assert.Empty(t, f.called)
}

func TestCompleted(t *testing.T) {
	s, f := newTestScraper(map[string]string{
		"https://mangareader.to/completed/?sort=score&page=1": searchHTML,
	})

	got, err := s.Completed(context.Background(), SortKey("score"), 1)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, []string{"https://mangareader.to/completed/?sort=score&page=1"}, f.called)

	_, err = s.Completed(context.Background(), SortKey("random"), 1)
	assert.ErrorIs(t, err, ErrInvalidSort)
	assert.Len(t, f.called, 1)
}

func TestUnsupportedListing(t *testing.T) {
	f := &fakeFetcher{}
	s := New(f, providers.MyAnimeList(), nil)

	_, err := s.Popular(context.Background())
	require.ErrorIs(t, err, providers.ErrUnsupported)
	assert.Empty(t, f.called)
}
