package providers

import (
	"errors"
	"fmt"
	"maps"
	"sort"
	"strings"
)

var (
	ErrUnknownProvider = errors.New("unknown provider")
	ErrUnsupported     = errors.New("listing not supported by provider")
)

// Listing names one scrapeable page section.
type Listing string

const (
	ListingPopular    Listing = "popular"
	ListingTopTen     Listing = "top-10"
	ListingMostViewed Listing = "most-viewed"
	ListingSearch     Listing = "search"
	ListingCompleted  Listing = "completed"
)

// Field locates one record field inside an item node. Attr is only read by
// attribute rules; an empty Attr lets the rule fall back to its default.
type Field struct {
	Selector string
	Attr     string
}

// Selectors is the selector map of one listing. Path and Container may carry
// {placeholders} that are filled by Expand.
type Selectors struct {
	Path      string
	Container string
	Item      string
	Fields    map[string]Field
}

// DetailSelectors describes a single-entry page. Info rows are "Label: value"
// blocks whose label lives in InfoHead.
type DetailSelectors struct {
	Path       string
	RandomPath string
	Fields     map[string]Field
	Info       string
	InfoHead   string

	// IDFirstSegment marks "<id>/<name>" slugs; otherwise the ID is the
	// trailing "-<n>" of the slug.
	IDFirstSegment bool
}

// Provider is an immutable descriptor; nothing mutates it after the registry
// is built.
type Provider struct {
	Name     string
	BaseURL  string
	Listings map[Listing]Selectors
	Detail   *DetailSelectors
}

func (p Provider) Listing(l Listing) (Selectors, error) {
	sel, ok := p.Listings[l]
	if !ok {
		return Selectors{}, fmt.Errorf("%w: %s has no %s listing", ErrUnsupported, p.Name, l)
	}

	return sel, nil
}

// URL joins the base URL with an expanded path template.
func (p Provider) URL(path string, vars Vars) string {
	return strings.TrimRight(p.BaseURL, "/") + Expand(path, vars)
}

// clone copies the selector maps so callers cannot edit registry state.
func (p Provider) clone() Provider {
	out := p
	out.Listings = make(map[Listing]Selectors, len(p.Listings))
	for l, sel := range p.Listings {
		sel.Fields = maps.Clone(sel.Fields)
		out.Listings[l] = sel
	}
	if p.Detail != nil {
		d := *p.Detail
		d.Fields = maps.Clone(d.Fields)
		out.Detail = &d
	}

	return out
}

type Vars map[string]string

// Expand substitutes every {key} in tmpl. Unknown placeholders are left as is.
func Expand(tmpl string, vars Vars) string {
	if len(vars) == 0 {
		return tmpl
	}

	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}

	return strings.NewReplacer(pairs...).Replace(tmpl)
}

type Registry struct {
	byName map[string]Provider
	names  []string
}

func NewRegistry(list ...Provider) *Registry {
	r := &Registry{byName: make(map[string]Provider, len(list))}
	for _, p := range list {
		r.byName[p.Name] = p
		r.names = append(r.names, p.Name)
	}
	sort.Strings(r.names)

	return r
}

func (r *Registry) Lookup(name string) (Provider, error) {
	p, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Provider{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownProvider, name, strings.Join(r.names, ", "))
	}

	return p.clone(), nil
}

func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

var defaultRegistry = NewRegistry(MangaReader(), MyAnimeList())

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}
