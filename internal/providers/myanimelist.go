package providers

// MyAnimeList only exposes manga detail pages; slugs take the "<id>/<name>"
// form used in its URLs.
func MyAnimeList() Provider {
	return Provider{
		Name:     "myanimelist",
		BaseURL:  "https://myanimelist.net",
		Listings: map[Listing]Selectors{},
		Detail: &DetailSelectors{
			Path: "/manga/{slug}",
			Fields: map[string]Field{
				"title":     {Selector: ".h1-title span[itemprop=name]"},
				"alt_title": {Selector: ".h1-title .title-english"},
				"cover":     {Selector: ".leftside img[itemprop=image]", Attr: "data-src"},
				"synopsis":  {Selector: "span[itemprop=description]"},
				"genres":    {Selector: "span[itemprop=genre]"},
			},
			Info:           ".leftside .spaceit_pad",
			InfoHead:       "span.dark_text",
			IDFirstSegment: true,
		},
	}
}
