package scrape

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/brogergvhs/mangaread/internal/util"
)

var (
	ErrInvalidChart   = errors.New("invalid chart")
	ErrInvalidSort    = errors.New("invalid sort")
	ErrInvalidPage    = errors.New("invalid page")
	ErrEmptyKeyword   = errors.New("empty keyword")
	ErrEmptySlug      = errors.New("empty slug")
	ErrInvalidSlug    = errors.New("invalid slug")
	ErrRandomDisabled = errors.New("random not supported by provider")
)

type Chart string

const (
	ChartToday Chart = "today"
	ChartWeek  Chart = "week"
	ChartMonth Chart = "month"
)

var Charts = []Chart{ChartToday, ChartWeek, ChartMonth}

func (c Chart) Valid() bool {
	return slices.Contains(Charts, c)
}

// ParseChart validates a caller-supplied chart before any page is fetched.
func ParseChart(s string) (Chart, error) {
	c := Chart(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: passed query (%s) is invalid. Valid queries %s", ErrInvalidChart, s, joinValues(Charts))
	}

	return c, nil
}

type SortKey string

const SortDefault SortKey = "default"

var SortKeys = []SortKey{SortDefault, "latest-updated", "score", "name-az", "release-date", "most-viewed"}

func (k SortKey) Valid() bool {
	return slices.Contains(SortKeys, k)
}

// ParseSort slugifies s ("Name AZ" → "name-az") and checks it against the
// completed listing's sort options. Blank means the default order.
func ParseSort(s string) (SortKey, error) {
	k := SortKey(util.Slugify(s, "-"))
	if k == "" {
		return SortDefault, nil
	}
	if !k.Valid() {
		return "", fmt.Errorf("%w: passed query (%s) is invalid. Valid queries %s", ErrInvalidSort, s, joinValues(SortKeys))
	}

	return k, nil
}

func joinValues[T ~string](vals []T) string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = string(v)
	}

	return strings.Join(s, " | ")
}
