package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	mangaCmd := &cobra.Command{
		Use:   "manga <slug>",
		Short: "Show the details of one manga, e.g. one-piece-3",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(loadOptions())
			if err != nil {
				return err
			}

			m, err := s.scraper().Manga(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return printResult(m)
		},
	}

	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "Show the details of a randomly picked manga",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(loadOptions())
			if err != nil {
				return err
			}

			m, err := s.scraper().Random(cmd.Context())
			if err != nil {
				return err
			}

			return printResult(m)
		},
	}

	rootCmd.AddCommand(mangaCmd, randomCmd)
}
