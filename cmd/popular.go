package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	popularCmd := &cobra.Command{
		Use:   "popular",
		Short: "List the trending manga of the season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(loadOptions())
			if err != nil {
				return err
			}

			records, err := s.scraper().Popular(cmd.Context())
			if err != nil {
				return err
			}

			return printResult(records)
		},
	}

	topTenCmd := &cobra.Command{
		Use:   "top-10",
		Short: "List the top 10 manga of the season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(loadOptions())
			if err != nil {
				return err
			}

			records, err := s.scraper().TopTen(cmd.Context())
			if err != nil {
				return err
			}

			return printResult(records)
		},
	}

	rootCmd.AddCommand(popularCmd, topTenCmd)
}
