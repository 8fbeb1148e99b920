// Package listing windows scraped record lists for paginated responses.
package listing

const (
	DefaultLimit = 10

	// ChartLimit caps popular, top-10 and most-viewed responses.
	ChartLimit = 10
	// SearchLimit caps search and completed responses.
	SearchLimit = 18
)

// Window returns records[offset:offset+limit] with slice-index clamping:
// negative bounds count from the end and out of range bounds are clipped, so
// the result is never a panic, only a possibly empty list.
func Window[T any](records []T, offset, limit int) []T {
	n := len(records)
	start := clamp(offset, n)
	end := clamp(offset+limit, n)

	if end <= start {
		return []T{}
	}

	return records[start:end]
}

func clamp(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}
