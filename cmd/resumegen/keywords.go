package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"resume-generator/internal/matching"
	"resume-generator/internal/resume"
)

//nolint:gochecknoglobals // Cobra boilerplate
var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List taxonomy keywords found in a job description",
	RunE:  runKeywords,
}

//nolint:gochecknoglobals // Cobra boilerplate
var (
	keywordsJobFile    string
	keywordsResumeFile string
)

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsJobFile, "job", "j", "-", "Path to job description text (\"-\" for stdin)")
	keywordsCmd.Flags().StringVarP(&keywordsResumeFile, "resume", "r", "", "Optional resume JSON to score against the keywords")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	job, err := readSource(cmd.InOrStdin(), keywordsJobFile)
	if err != nil {
		return err
	}
	set := matching.ExtractKeywords(job)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, strings.Join(set.Sorted(), "\n"))

	if keywordsResumeFile == "" {
		return nil
	}
	raw, err := readSource(cmd.InOrStdin(), keywordsResumeFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "match score: %.2f\n", matching.Score(resume.Normalize([]byte(raw)), set))
	return nil
}
