package scrape

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/brogergvhs/mangaread/internal/providers"
)

// Kind selects the extraction primitive a field rule applies.
type Kind int

const (
	KindText Kind = iota
	KindAttr
	KindNumeric
	KindFloat
	KindList
)

// Value is the outcome of one rule. Only the member matching the rule's
// kind is populated, and it stays nil when the selector missed.
type Value struct {
	Str  *string
	Num  *float64
	List []string
}

// column binds a named selector from the provider bundle to a record field.
type column[T any] struct {
	name string
	kind Kind
	attr string
	set  func(*T, Value)
}

func (c column[T]) extract(node *goquery.Selection, f providers.Field) Value {
	switch c.kind {
	case KindText:
		return Value{Str: Text(node, f.Selector)}
	case KindAttr:
		attr := f.Attr
		if attr == "" {
			attr = c.attr
		}
		return Value{Str: Attr(node, f.Selector, attr)}
	case KindNumeric:
		return Value{Num: Numeric(node, f.Selector)}
	case KindFloat:
		return Value{Num: Float(node, f.Selector)}
	case KindList:
		return Value{List: Texts(node, f.Selector)}
	default:
		return Value{}
	}
}

func fill[T any](rec *T, node *goquery.Selection, fields map[string]providers.Field, cols []column[T]) {
	for _, c := range cols {
		c.set(rec, c.extract(node, fields[c.name]))
	}
}

// collect finds the container, then builds one record per item node. A
// missing container is not an error: the result is simply empty.
func collect[T any](doc *goquery.Document, sel providers.Selectors, cols []column[T], newRecord func(rank int) T, log Logger) []T {
	container := doc.Find(sel.Container).First()
	if container.Length() == 0 {
		log.Debugf("container %q not found", sel.Container)
		return []T{}
	}

	items := container.Find(sel.Item)
	out := make([]T, 0, items.Length())
	items.Each(func(i int, item *goquery.Selection) {
		rec := newRecord(i + 1)
		fill(&rec, item, sel.Fields, cols)
		out = append(out, rec)
	})

	log.Debugf("container %q: %d items", sel.Container, len(out))
	return out
}

// Shared rules for the Summary fields.

func titleColumn[T any](get func(*T) *Summary) column[T] {
	return column[T]{name: "title", kind: KindText, set: func(r *T, v Value) { get(r).Title = v.Str }}
}

func slugColumn[T any](get func(*T) *Summary) column[T] {
	return column[T]{name: "link", kind: KindAttr, attr: "href", set: func(r *T, v Value) { get(r).Slug = SlugFromLink(v.Str) }}
}

func coverColumn[T any](get func(*T) *Summary) column[T] {
	return column[T]{name: "cover", kind: KindAttr, attr: "src", set: func(r *T, v Value) { get(r).Cover = v.Str }}
}
