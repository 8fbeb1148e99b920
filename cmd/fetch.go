package cmd

import (
	"context"

	"github.com/brogergvhs/mangaread/internal/scrape"
	"github.com/brogergvhs/mangaread/internal/util"
)

// meteredFetcher reports the body size of every fetched page.
type meteredFetcher struct {
	next   scrape.Fetcher
	onPage func(bytes int)
}

func (m meteredFetcher) Fetch(ctx context.Context, target string) (*util.Page, error) {
	page, err := m.next.Fetch(ctx, target)
	if err == nil && m.onPage != nil {
		m.onPage(len(page.Body))
	}

	return page, err
}
