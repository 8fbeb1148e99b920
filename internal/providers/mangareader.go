package providers

const DefaultProvider = "mangareader"

var mangaReaderSearch = map[string]Field{
	"title":    {Selector: ".manga-detail .manga-name a"},
	"link":     {Selector: ".manga-detail .manga-name a", Attr: "href"},
	"cover":    {Selector: ".manga-poster img", Attr: "src"},
	"langs":    {Selector: ".manga-poster .tick-lang"},
	"genres":   {Selector: ".manga-detail .fd-infor a"},
	"chapters": {Selector: ".manga-detail .fd-list:nth-child(1) .chapter a"},
}

// MangaReader is the mangareader.to bundle. It is the only provider with
// listing pages.
func MangaReader() Provider {
	return Provider{
		Name:    DefaultProvider,
		BaseURL: "https://mangareader.to",
		Listings: map[Listing]Selectors{
			ListingPopular: {
				Path:      "/home",
				Container: "#manga-trending",
				Item:      "div.swiper-slide",
				Fields: map[string]Field{
					"title":    {Selector: ".anime-name"},
					"link":     {Selector: "a.link-mask", Attr: "href"},
					"cover":    {Selector: "img.manga-poster-img", Attr: "src"},
					"rating":   {Selector: ".mp-desc p:nth-of-type(2)"},
					"chapters": {Selector: ".mp-desc p:nth-of-type(4)"},
					"volumes":  {Selector: ".mp-desc p:nth-of-type(5)"},
				},
			},
			ListingTopTen: {
				Path:      "/home",
				Container: ".deslide-wrap #slider .swiper-wrapper",
				Item:      "div.swiper-slide",
				Fields: map[string]Field{
					"title":    {Selector: ".desi-head-title a"},
					"link":     {Selector: ".desi-head-title a", Attr: "href"},
					"cover":    {Selector: "img.manga-poster-img", Attr: "src"},
					"chapter":  {Selector: ".desi-sub-text"},
					"synopsis": {Selector: ".sc-detail .scd-item"},
					"genres":   {Selector: ".sc-detail .scd-genres span"},
				},
			},
			ListingMostViewed: {
				Path:      "/home",
				Container: "#main-sidebar #chart-{chart}",
				Item:      "ul > li",
				Fields: map[string]Field{
					"title":    {Selector: ".manga-detail .manga-name a"},
					"link":     {Selector: ".manga-detail .manga-name a", Attr: "href"},
					"cover":    {Selector: "img.manga-poster-img", Attr: "src"},
					"views":    {Selector: ".fd-infor span.fdi-view"},
					"chapters": {Selector: ".fd-infor .fdi-chapter:nth-child(1)"},
					"volumes":  {Selector: ".fd-infor .fdi-chapter:nth-child(2)"},
					"genres":   {Selector: ".fd-infor .fdi-cate a"},
				},
			},
			ListingSearch: {
				Path:      "/search?keyword={keyword}&page={page}",
				Container: ".manga_list-sbs .mls-wrap",
				Item:      "div.item.item-spc",
				Fields:    mangaReaderSearch,
			},
			ListingCompleted: {
				Path:      "/completed/?sort={sort}&page={page}",
				Container: ".manga_list-sbs .mls-wrap",
				Item:      "div.item.item-spc",
				Fields:    mangaReaderSearch,
			},
		},
		Detail: &DetailSelectors{
			Path:       "/{slug}",
			RandomPath: "/random",
			Fields: map[string]Field{
				"title":     {Selector: "#ani_detail .anisc-detail .manga-name"},
				"alt_title": {Selector: "#ani_detail .anisc-detail .manga-name-or"},
				"cover":     {Selector: "#ani_detail .anisc-poster img.manga-poster-img", Attr: "src"},
				"synopsis":  {Selector: "#ani_detail .sort-desc .description"},
				"genres":    {Selector: "#ani_detail .sort-desc .genres a"},
			},
			Info:     "#ani_detail .anisc-info .item",
			InfoHead: ".item-head",
		},
	}
}
