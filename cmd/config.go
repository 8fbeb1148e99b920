package cmd

import (
	"fmt"
	"os"

	"github.com/brogergvhs/mangaread/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the mangaread config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, used, err := config.LoadMerged(loadOptions())
		if err != nil {
			return err
		}

		if used == "" {
			fmt.Println("No config file loaded, using defaults.")
		} else {
			fmt.Printf("Loaded config from:\n  %s\n", used)
		}
		fmt.Println()
		cfg.Print(os.Stdout)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where the config file lives",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.ConfigPath())
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
