package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"resume-generator/internal/bootstrap"
	"resume-generator/internal/generation"
	"resume-generator/internal/shared/config"
	"resume-generator/internal/shared/telemetry"
)

//nolint:gochecknoglobals // Cobra boilerplate
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the full resume pipeline with the configured provider",
	Long:  "Try the configured LLM provider once, gate its answer, and fall back to template synthesis. Provider settings come from the environment.",
	RunE:  runGenerate,
}

//nolint:gochecknoglobals // Cobra boilerplate
var (
	genInputFile  string
	genResumeFile string
	genJobFile    string
	genJobTitle   string
	genCompany    string
	genJSON       bool
)

func init() {
	generateCmd.Flags().StringVarP(&genInputFile, "in", "i", "", "Path to the free-text prompt")
	generateCmd.Flags().StringVarP(&genResumeFile, "resume", "r", "", "Path to resume JSON")
	generateCmd.Flags().StringVarP(&genJobFile, "job", "j", "", "Path to job description text")
	generateCmd.Flags().StringVar(&genJobTitle, "title", "Position", "Target job title")
	generateCmd.Flags().StringVar(&genCompany, "company", "Company", "Target company name")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "Print the full result as JSON")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	// stdout carries the document; logs, including config warnings, go to stderr.
	restore := telemetry.Use(telemetry.NewWriter("info", cmd.ErrOrStderr()))
	defer restore()
	cfg := config.Load()
	telemetry.Use(telemetry.NewWriter(cfg.LogLevel, cmd.ErrOrStderr()))

	in := cmd.InOrStdin()
	input, err := readSource(in, genInputFile)
	if err != nil {
		return err
	}
	raw, err := readSource(in, genResumeFile)
	if err != nil {
		return err
	}
	job, err := readSource(in, genJobFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	gen, closer := bootstrap.NewGenerator(ctx, cfg)
	if closer != nil {
		defer closer()
	}
	svc := generation.NewService(gen, bootstrap.GateFromConfig(cfg), cfg.LLMTimeout)

	var resumeRaw []byte
	if raw != "" {
		resumeRaw = []byte(raw)
	}
	res := svc.GenerateResume(ctx, generation.ResumeRequest{
		Input:          input,
		Resume:         resumeRaw,
		JobDescription: job,
		JobTitle:       genJobTitle,
		CompanyName:    genCompany,
	})

	out := cmd.OutOrStdout()
	if !genJSON {
		fmt.Fprintln(out, res.Output)
		return nil
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"output":      res.Output,
		"source":      res.Source,
		"match_score": res.MatchScore,
	})
}
