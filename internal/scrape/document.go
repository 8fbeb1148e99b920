package scrape

import (
	"bytes"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// Parse builds a queryable tree from raw markup. The HTML5 parser behind
// goquery recovers from unclosed and misnested tags, so an error here only
// means r could not be read.
func Parse(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	return doc, nil
}

func ParseBytes(b []byte) (*goquery.Document, error) {
	return Parse(bytes.NewReader(b))
}
