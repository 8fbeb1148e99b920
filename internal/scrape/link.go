package scrape

import (
	"strconv"
	"strings"
)

const (
	lowResToken  = "200x300"
	highResToken = "500x800"
)

// SlugFromLink strips every "/" from a relative link: "/one-piece-3/"
// becomes "one-piece-3". A nil or separator-only link has no slug.
func SlugFromLink(link *string) *string {
	if link == nil {
		return nil
	}

	slug := strings.ReplaceAll(*link, "/", "")
	if slug == "" {
		return nil
	}

	return &slug
}

// IDFromSlug returns the last hyphen-separated segment: "one-piece-3" gives "3".
func IDFromSlug(slug string) string {
	parts := strings.Split(slug, "-")
	return parts[len(parts)-1]
}

func numericID(slug *string) *int {
	if slug == nil {
		return nil
	}

	id, err := strconv.Atoi(IDFromSlug(*slug))
	if err != nil {
		return nil
	}

	return &id
}

// HighResCover swaps the thumbnail dimensions in a cover URL for the larger
// variant the CDN also serves.
func HighResCover(cover *string) *string {
	if cover == nil {
		return nil
	}

	out := strings.ReplaceAll(*cover, lowResToken, highResToken)
	return &out
}

// ParseChapterLabel reads labels like "Chapter 45 [EN]": the second token is
// the total, the third the bracketed language.
func ParseChapterLabel(label *string) *ChapterInfo {
	if label == nil {
		return nil
	}

	parts := strings.Fields(*label)
	if len(parts) < 3 {
		return nil
	}

	return &ChapterInfo{
		Total: parts[1],
		Lang:  strings.NewReplacer("[", "", "]", "").Replace(parts[2]),
	}
}

// SplitLangs splits a combined badge such as "EN/JA".
func SplitLangs(label *string) []string {
	if label == nil || *label == "" {
		return nil
	}

	return strings.Split(*label, "/")
}
