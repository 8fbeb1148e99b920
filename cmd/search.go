package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/brogergvhs/mangaread/internal/listing"
	"github.com/brogergvhs/mangaread/internal/scrape"
	"github.com/brogergvhs/mangaread/internal/ui"
	"github.com/brogergvhs/mangaread/internal/util"
)

var (
	flagPage    int
	flagPages   int
	flagWorkers int
	flagSort    string
)

func init() {
	searchCmd := &cobra.Command{
		Use:   "search <keyword...>",
		Short: "Search the catalog by keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := strings.Join(args, " ")
			return runPaged(cmd, "search", func(sc *scrape.Scraper) listing.PageFunc[scrape.SearchResult] {
				return func(ctx context.Context, page int) ([]scrape.SearchResult, error) {
					return sc.Search(ctx, keyword, page)
				}
			})
		},
	}

	completedCmd := &cobra.Command{
		Use:   "completed",
		Short: "List finished series, ordered by --sort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw := flagSort
			if !cmd.Flags().Changed("sort") && interactive() {
				var err error
				if raw, err = pickSort(); err != nil {
					return err
				}
			}

			sort, err := scrape.ParseSort(raw)
			if err != nil {
				return err
			}

			return runPaged(cmd, "completed", func(sc *scrape.Scraper) listing.PageFunc[scrape.SearchResult] {
				return func(ctx context.Context, page int) ([]scrape.SearchResult, error) {
					return sc.Completed(ctx, sort, page)
				}
			})
		},
	}
	completedCmd.Flags().StringVar(&flagSort, "sort", string(scrape.SortDefault), "sort order (default, latest-updated, score, name-az, release-date, most-viewed)")

	for _, c := range []*cobra.Command{searchCmd, completedCmd} {
		c.Flags().IntVar(&flagPage, "page", 1, "first result page")
		c.Flags().IntVar(&flagPages, "pages", 1, "number of consecutive pages to fetch")
		c.Flags().IntVar(&flagWorkers, "workers", 0, "parallel page fetches (overrides search_workers)")
	}

	rootCmd.AddCommand(searchCmd, completedCmd)
}

func pickSort() (string, error) {
	items := make([]string, len(scrape.SortKeys))
	for i, k := range scrape.SortKeys {
		items[i] = string(k)
	}

	prompt := promptui.Select{
		Label: "Select sort order",
		Items: items,
	}

	_, key, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled")
	}

	return key, nil
}

// runPaged fetches --pages result pages starting at --page and prints them
// as one list. A progress bar is drawn for more than one page.
func runPaged(cmd *cobra.Command, name string, build func(*scrape.Scraper) listing.PageFunc[scrape.SearchResult]) error {
	opts := loadOptions()
	opts.SearchWorkers = flagWorkers

	s, err := newSession(opts)
	if err != nil {
		return err
	}

	if flagPage < 1 {
		return fmt.Errorf("%w: --page must be at least 1", scrape.ErrInvalidPage)
	}
	if flagPages < 1 {
		return fmt.Errorf("%w: --pages must be at least 1", scrape.ErrInvalidPage)
	}

	if flagPages == 1 {
		records, err := build(s.scraper())(cmd.Context(), flagPage)
		if err != nil {
			return err
		}
		return printResult(records)
	}

	pm := ui.NewProgressManager()
	handle := pm.Register(name, flagPages)

	stats := &ui.Stats{}
	sc := scrape.New(meteredFetcher{
		next: s.fetcher,
		onPage: func(n int) {
			stats.TotalBytes.Add(int64(n))
			handle.PageDone(n)
		},
	}, s.provider, s.log)

	start := time.Now()
	records, err := listing.Pages(cmd.Context(), flagPage, flagPages, s.cfg.SearchWorkers, build(sc), func(_, n int) {
		stats.TotalPages.Add(1)
		stats.TotalRecords.Add(int64(n))
	})
	if err != nil {
		handle.Abort()
	}
	pm.Close()
	if err != nil {
		return err
	}

	s.log.Infof("%d pages, %d records, %s in %s",
		stats.TotalPages.Load(), stats.TotalRecords.Load(),
		util.Human(stats.TotalBytes.Load()), time.Since(start).Round(time.Millisecond))

	return printResult(records)
}
