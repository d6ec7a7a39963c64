package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resume-generator/internal/matching"
	"resume-generator/internal/resume"
	"resume-generator/internal/synth"
)

//nolint:gochecknoglobals // Cobra boilerplate
var synthesizeCmd = &cobra.Command{
	Use:   "synthesize",
	Short: "Render the template resume for a job",
	Long:  "Normalize a resume JSON file and render the deterministic markdown resume tailored to a job description.",
	RunE:  runSynthesize,
}

//nolint:gochecknoglobals // Cobra boilerplate
var (
	synthResumeFile string
	synthJobFile    string
	synthJobTitle   string
	synthCompany    string
	synthShowScore  bool
)

func init() {
	synthesizeCmd.Flags().StringVarP(&synthResumeFile, "resume", "r", "", "Path to resume JSON (\"-\" for stdin)")
	synthesizeCmd.Flags().StringVarP(&synthJobFile, "job", "j", "", "Path to job description text")
	synthesizeCmd.Flags().StringVar(&synthJobTitle, "title", "Position", "Target job title")
	synthesizeCmd.Flags().StringVar(&synthCompany, "company", "Company", "Target company name")
	synthesizeCmd.Flags().BoolVar(&synthShowScore, "score", false, "Print the match score after the document")

	rootCmd.AddCommand(synthesizeCmd)
}

func runSynthesize(cmd *cobra.Command, _ []string) error {
	raw, err := readSource(cmd.InOrStdin(), synthResumeFile)
	if err != nil {
		return err
	}
	job, err := readSource(cmd.InOrStdin(), synthJobFile)
	if err != nil {
		return err
	}

	var parsed resume.NormalizedResume
	if raw == "" {
		parsed = resume.Empty()
	} else {
		parsed = resume.Normalize([]byte(raw))
	}

	doc := synth.Synthesize(parsed, job, synthJobTitle, synthCompany)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, doc.Markdown())
	if synthShowScore {
		fmt.Fprintf(out, "\nmatch score: %.2f\n", matching.Score(parsed, matching.ExtractKeywords(job)))
	}
	return nil
}
