package listing

import (
	"context"
	"errors"
	"sync"
)

// PageFunc scrapes one 1-based result page.
type PageFunc[T any] func(ctx context.Context, page int) ([]T, error)

// Pages scrapes pages first..first+count-1 with at most workers in flight and
// concatenates the results in page order. The first failure cancels the pages
// still waiting and is returned; done is called after every successful page.
func Pages[T any](ctx context.Context, first, count, workers int, fn PageFunc[T], done func(page, records int)) ([]T, error) {
	if count < 1 {
		return []T{}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([][]T, count)
	errs := make([]error, count)

	sem := make(chan struct{}, max(1, workers))
	var wg sync.WaitGroup

	for i := range count {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}

			page := first + i
			records, err := fn(ctx, page)
			if err != nil {
				errs[i] = err
				cancel()
				return
			}

			results[i] = records
			if done != nil {
				done(page, len(records))
			}
		}()
	}
	wg.Wait()

	if err := firstError(errs); err != nil {
		return nil, err
	}

	out := []T{}
	for _, r := range results {
		out = append(out, r...)
	}

	return out, nil
}

// firstError prefers a real failure over the cancellations it caused.
func firstError(errs []error) error {
	var cancelled error
	for _, err := range errs {
		switch {
		case err == nil:
		case errors.Is(err, context.Canceled):
			if cancelled == nil {
				cancelled = err
			}
		default:
			return err
		}
	}

	return cancelled
}
