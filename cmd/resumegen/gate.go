package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"resume-generator/internal/gate"
)

//nolint:gochecknoglobals // Cobra boilerplate
var gateCmd = &cobra.Command{
	Use:   "gate",
	Short: "Check whether text would pass the plausibility gate",
	Long:  "Run the plausibility gate on a candidate resume. Exits non-zero when the text is rejected.",
	RunE:  runGate,
}

//nolint:gochecknoglobals // Cobra boilerplate
var (
	gateInputFile string
	gateMinLength int
)

func init() {
	gateCmd.Flags().StringVarP(&gateInputFile, "in", "i", "-", "Path to candidate text (\"-\" for stdin)")
	gateCmd.Flags().IntVar(&gateMinLength, "min-length", gate.DefaultMinLength, "Minimum accepted length in characters")

	rootCmd.AddCommand(gateCmd)
}

func runGate(cmd *cobra.Command, _ []string) error {
	text, err := readSource(cmd.InOrStdin(), gateInputFile)
	if err != nil {
		return err
	}
	v := gate.Gate{MinLength: gateMinLength}.Evaluate(text)
	if v.Accepted {
		fmt.Fprintln(cmd.OutOrStdout(), "accepted")
		return nil
	}
	if v.Phrase != "" {
		return fmt.Errorf("rejected: %s (%q)", v.Reason, v.Phrase)
	}
	return errors.New("rejected: " + v.Reason)
}
