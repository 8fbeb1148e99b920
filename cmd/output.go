package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

func writeOutput(w io.Writer, v any, format string) error {
	switch strings.ToLower(format) {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer func() {
			_ = enc.Close()
		}()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q (json, yaml)", format)
	}
}

func printResult(v any) error {
	return writeOutput(os.Stdout, v, flagOutput)
}

// interactive reports whether stdin is a terminal we can prompt on.
func interactive() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	return fi.Mode()&os.ModeCharDevice != 0
}
