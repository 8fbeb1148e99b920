package scrape

import (
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func first(node *goquery.Selection, selector string) *goquery.Selection {
	if node == nil || selector == "" {
		return nil
	}

	sel := node.Find(selector).First()
	if sel.Length() == 0 {
		return nil
	}

	return sel
}

// Text returns the trimmed text of the first descendant matching selector,
// or nil when nothing matches.
func Text(node *goquery.Selection, selector string) *string {
	sel := first(node, selector)
	if sel == nil {
		return nil
	}

	s := strings.TrimSpace(sel.Text())
	return &s
}

// Attr returns the raw value of attribute name on the first match.
func Attr(node *goquery.Selection, selector, name string) *string {
	sel := first(node, selector)
	if sel == nil {
		return nil
	}

	v, ok := sel.Attr(name)
	if !ok {
		return nil
	}

	return &v
}

// Texts returns the trimmed text of every match in document order. The
// result is nil when nothing matches; callers decide whether that becomes an
// empty list.
func Texts(node *goquery.Selection, selector string) []string {
	if node == nil || selector == "" {
		return nil
	}

	var out []string
	node.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})

	return out
}

// Numeric scans the matched text for its first whitespace-separated number,
// so "Vol. 12" gives 12. Thousands separators are not understood: "1,204"
// is not a number.
func Numeric(node *goquery.Selection, selector string) *float64 {
	return NumericToken(Text(node, selector))
}

func NumericToken(text *string) *float64 {
	if text == nil {
		return nil
	}

	for _, tok := range strings.Fields(*text) {
		if n, ok := parseNumber(tok); ok {
			return &n
		}
	}

	return nil
}

// Float parses the whole trimmed text as one number.
func Float(node *goquery.Selection, selector string) *float64 {
	text := Text(node, selector)
	if text == nil {
		return nil
	}

	n, ok := parseNumber(*text)
	if !ok {
		return nil
	}

	return &n
}

func parseNumber(tok string) (float64, bool) {
	if tok == "" {
		return 0, false
	}

	// ParseFloat also takes hex floats, which no catalog prints.
	unsigned := strings.TrimLeft(tok, "+-")
	if strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") {
		return 0, false
	}

	n, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}

	return n, true
}
