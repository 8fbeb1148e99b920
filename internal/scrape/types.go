package scrape

// Summary holds the fields every listing record shares. Rank is the 1-based
// position among the page's item nodes, never taken from the page itself.
type Summary struct {
	Rank  int     `json:"rank" yaml:"rank"`
	Title *string `json:"title" yaml:"title"`
	Slug  *string `json:"slug" yaml:"slug"`
	Cover *string `json:"cover" yaml:"cover"`
}

type PopularManga struct {
	Summary  `yaml:",inline"`
	Rating   *float64 `json:"rating" yaml:"rating"`
	Chapters *float64 `json:"chapters" yaml:"chapters"`
	Volumes  *float64 `json:"volumes" yaml:"volumes"`
}

type TopTenManga struct {
	Summary  `yaml:",inline"`
	Chapter  *float64 `json:"chapter" yaml:"chapter"`
	Synopsis *string  `json:"synopsis" yaml:"synopsis"`
	Genres   []string `json:"genres" yaml:"genres"`
}

// MostViewedManga differs from the other listings in one respect: Genres is
// nil, not empty, when the entry shows no genre links.
type MostViewedManga struct {
	Summary  `yaml:",inline"`
	Views    *float64 `json:"views" yaml:"views"`
	Chapters *float64 `json:"chapters" yaml:"chapters"`
	Volumes  *float64 `json:"volumes" yaml:"volumes"`
	Genres   []string `json:"genres" yaml:"genres"`
}

type ChapterInfo struct {
	Total string `json:"total" yaml:"total"`
	Lang  string `json:"lang" yaml:"lang"`
}

type SearchResult struct {
	Summary  `yaml:",inline"`
	ID       *int         `json:"id" yaml:"id"`
	Langs    []string     `json:"langs" yaml:"langs"`
	Genres   []string     `json:"genres" yaml:"genres"`
	Chapters *ChapterInfo `json:"chapters" yaml:"chapters"`
}

type MangaDetail struct {
	Slug      *string  `json:"slug" yaml:"slug"`
	ID        *int     `json:"id" yaml:"id"`
	Title     *string  `json:"title" yaml:"title"`
	AltTitle  *string  `json:"alt_title" yaml:"alt_title"`
	Cover     *string  `json:"cover" yaml:"cover"`
	Synopsis  *string  `json:"synopsis" yaml:"synopsis"`
	Genres    []string `json:"genres" yaml:"genres"`
	Type      *string  `json:"type" yaml:"type"`
	Status    *string  `json:"status" yaml:"status"`
	Authors   []string `json:"authors" yaml:"authors"`
	Published *string  `json:"published" yaml:"published"`
	Score     *float64 `json:"score" yaml:"score"`
	Views     *float64 `json:"views" yaml:"views"`
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}

	return list
}
