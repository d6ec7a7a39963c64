// Package main provides an offline command line for the resume pipeline.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:           "resumegen",
	Short:         "Resume synthesis and matching tools",
	Long:          "resumegen runs the resume pipeline locally: keyword extraction, match scoring, the plausibility gate and template synthesis.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// readSource returns the contents of path, or of in when path is "-".
// An empty path yields an empty string.
func readSource(in io.Reader, path string) (string, error) {
	switch strings.TrimSpace(path) {
	case "":
		return "", nil
	case "-":
		b, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	default:
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(b), nil
	}
}
