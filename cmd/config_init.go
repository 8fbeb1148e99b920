package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/brogergvhs/mangaread/internal/config"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var flagYes bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ConfigPath()

		if _, err := os.Stat(path); err == nil {
			fmt.Println("Configuration already exists at:")
			fmt.Println("  ", path)
			fmt.Println("Use `mangaread config reset` to recreate it.")
			return nil
		}

		fmt.Println("Configuration file will be saved at:")
		fmt.Println("  ", path)
		fmt.Println()

		fmt.Println("Default configuration:")
		config.DefaultConfig().Print(os.Stdout)
		fmt.Println()

		if !flagYes {
			prompt := promptui.Prompt{
				Label:     "Create config",
				IsConfirm: true,
			}
			resp, err := prompt.Run()
			if err != nil || !strings.EqualFold(strings.TrimSpace(resp), "y") {
				fmt.Println("Aborted.")
				return nil
			}
		}

		created, err := config.InitDefaultConfig()
		if errors.Is(err, os.ErrExist) {
			fmt.Println("Configuration already exists at:", created)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Println("Config created at:", created)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "do not ask for confirmation")
	configCmd.AddCommand(configInitCmd)
}
