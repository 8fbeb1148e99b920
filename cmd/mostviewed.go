package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/brogergvhs/mangaread/internal/scrape"
)

var mostViewedCmd = &cobra.Command{
	Use:       "most-viewed [today|week|month]",
	Short:     "List the most viewed manga of a chart",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"today", "week", "month"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw string
		if len(args) == 1 {
			raw = args[0]
		} else {
			var err error
			if raw, err = pickChart(); err != nil {
				return err
			}
		}

		chart, err := scrape.ParseChart(raw)
		if err != nil {
			return err
		}

		s, err := newSession(loadOptions())
		if err != nil {
			return err
		}

		records, err := s.scraper().MostViewed(cmd.Context(), chart)
		if err != nil {
			return err
		}

		return printResult(records)
	},
}

func pickChart() (string, error) {
	if !interactive() {
		return "", fmt.Errorf("missing chart argument (today, week, month)")
	}

	items := make([]string, len(scrape.Charts))
	for i, c := range scrape.Charts {
		items[i] = string(c)
	}

	prompt := promptui.Select{
		Label: "Select chart",
		Items: items,
	}

	_, chart, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled")
	}

	return chart, nil
}

func init() {
	rootCmd.AddCommand(mostViewedCmd)
}
