package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/brogergvhs/mangaread/internal/providers"
)

var detailColumns = []column[MangaDetail]{
	{name: "title", kind: KindText, set: func(m *MangaDetail, v Value) { m.Title = v.Str }},
	{name: "alt_title", kind: KindText, set: func(m *MangaDetail, v Value) { m.AltTitle = v.Str }},
	{name: "cover", kind: KindAttr, attr: "src", set: func(m *MangaDetail, v Value) { m.Cover = v.Str }},
	{name: "synopsis", kind: KindText, set: func(m *MangaDetail, v Value) { m.Synopsis = v.Str }},
	{name: "genres", kind: KindList, set: func(m *MangaDetail, v Value) { m.Genres = orEmpty(v.List) }},
}

type infoRow struct {
	value string
	links []string
}

// Manga scrapes the detail page of one entry.
func (s *Scraper) Manga(ctx context.Context, slug string) (*MangaDetail, error) {
	slug, escaped, err := cleanSlug(slug)
	if err != nil {
		return nil, err
	}

	d, err := s.detailSelectors()
	if err != nil {
		return nil, err
	}

	target := s.provider.URL(d.Path, providers.Vars{"slug": escaped})
	s.log.Debugf("scraping manga %q from %s", slug, target)

	doc, _, err := s.fetchDOM(ctx, target)
	if err != nil {
		return nil, err
	}

	return parseDetail(doc, d, &slug), nil
}

// Random follows the provider's random redirect and reads the slug from the
// page it lands on.
func (s *Scraper) Random(ctx context.Context) (*MangaDetail, error) {
	d, err := s.detailSelectors()
	if err != nil {
		return nil, err
	}
	if d.RandomPath == "" {
		return nil, fmt.Errorf("%w: %s", ErrRandomDisabled, s.provider.Name)
	}

	doc, final, err := s.fetchDOM(ctx, s.provider.URL(d.RandomPath, nil))
	if err != nil {
		return nil, err
	}
	s.log.Debugf("random landed on %s", final)

	var slug *string
	if u, err := url.Parse(final); err == nil && strings.Trim(u.Path, "/") != strings.Trim(d.RandomPath, "/") {
		if clean, _, err := cleanSlug(u.Path); err == nil {
			slug = &clean
		}
	}

	return parseDetail(doc, d, slug), nil
}

func (s *Scraper) detailSelectors() (*providers.DetailSelectors, error) {
	if s.provider.Detail == nil {
		return nil, fmt.Errorf("%w: %s has no detail pages", providers.ErrUnsupported, s.provider.Name)
	}

	return s.provider.Detail, nil
}

// cleanSlug drops empty path segments and returns the slug together with its
// path-escaped form. Dot segments are rejected so a slug cannot leave the
// provider's detail path.
func cleanSlug(raw string) (string, string, error) {
	var parts, escaped []string
	for _, seg := range strings.Split(strings.TrimSpace(raw), "/") {
		seg = strings.TrimSpace(seg)
		switch seg {
		case "":
			continue
		case ".", "..":
			return "", "", fmt.Errorf("%w: %q", ErrInvalidSlug, raw)
		}
		parts = append(parts, seg)
		escaped = append(escaped, url.PathEscape(seg))
	}
	if len(parts) == 0 {
		return "", "", ErrEmptySlug
	}

	return strings.Join(parts, "/"), strings.Join(escaped, "/"), nil
}

func detailID(d *providers.DetailSelectors, slug *string) *int {
	if slug == nil || !d.IDFirstSegment {
		return numericID(slug)
	}

	id, err := strconv.Atoi(strings.SplitN(*slug, "/", 2)[0])
	if err != nil {
		return nil
	}

	return &id
}

func parseDetail(doc *goquery.Document, d *providers.DetailSelectors, slug *string) *MangaDetail {
	m := &MangaDetail{
		Slug:    slug,
		ID:      detailID(d, slug),
		Genres:  []string{},
		Authors: []string{},
	}
	fill(m, doc.Selection, d.Fields, detailColumns)

	info := readInfo(doc, d)
	if row, ok := info["type"]; ok {
		m.Type = nonEmpty(row.value)
	}
	if row, ok := info["status"]; ok {
		m.Status = nonEmpty(row.value)
	}
	if row, ok := info["published"]; ok {
		m.Published = nonEmpty(row.value)
	}
	if row, ok := info["authors"]; ok && len(row.links) > 0 {
		m.Authors = row.links
	}
	if row, ok := info["score"]; ok {
		m.Score = NumericToken(&row.value)
	}
	if row, ok := info["views"]; ok {
		m.Views = NumericToken(&row.value)
	}

	return m
}

// readInfo collects "Label: value" rows keyed by lowercased label.
func readInfo(doc *goquery.Document, d *providers.DetailSelectors) map[string]infoRow {
	rows := map[string]infoRow{}
	if d.Info == "" || d.InfoHead == "" {
		return rows
	}

	doc.Find(d.Info).Each(func(_ int, row *goquery.Selection) {
		head := row.Find(d.InfoHead).First()
		if head.Length() == 0 {
			return
		}
		label := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(head.Text()), ":"))

		body := row.Clone()
		body.Find(d.InfoHead).Remove()

		var links []string
		body.Find("a").Each(func(_ int, a *goquery.Selection) {
			if t := strings.TrimSpace(a.Text()); t != "" {
				links = append(links, t)
			}
		})

		rows[label] = infoRow{
			value: strings.Join(strings.Fields(body.Text()), " "),
			links: links,
		}
	})

	return rows
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
