package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brogergvhs/mangaread/internal/scrape"
	"github.com/brogergvhs/mangaread/internal/util"
)

func TestWriteOutput(t *testing.T) {
	title := "One Piece & Friends"
	records := []scrape.PopularManga{{Summary: scrape.Summary{Rank: 1, Title: &title}}}

	var buf bytes.Buffer
	require.NoError(t, writeOutput(&buf, records, "json"))
	assert.Contains(t, buf.String(), `"title": "One Piece & Friends"`)
	assert.Contains(t, buf.String(), `"rating": null`)

	buf.Reset()
	require.NoError(t, writeOutput(&buf, records, "yaml"))
	assert.Contains(t, buf.String(), "- rank: 1\n")
	assert.Contains(t, buf.String(), "One Piece & Friends")

	assert.Error(t, writeOutput(&buf, records, "xml"))
}

type stubFetcher struct {
	body string
	err  error
}

func (s stubFetcher) Fetch(_ context.Context, target string) (*util.Page, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &util.Page{URL: target, Body: []byte(s.body)}, nil
}

func TestMeteredFetcher(t *testing.T) {
	var total int
	m := meteredFetcher{next: stubFetcher{body: "12345"}, onPage: func(n int) { total += n }}

	_, err := m.Fetch(context.Background(), "https://example.test")
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	m.next = stubFetcher{err: errors.New("down")}
	_, err = m.Fetch(context.Background(), "https://example.test")
	assert.Error(t, err)
	assert.Equal(t, 5, total)
}
