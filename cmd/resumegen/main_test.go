package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `{"personalInfo":{"name":"Jane Doe"},"sections":[{"id":"skills","items":["Python","Docker"]}]}`

// execute runs the root command with fresh flag values and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeSplit(t, stdin, args...)
	return out, err
}

// executeSplit is execute with stderr captured separately.
func executeSplit(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"synthesize", "keywords", "gate", "generate"} {
		assert.True(t, names[want], want)
	}
}

func TestKeywordsFromStdin(t *testing.T) {
	out, err := execute(t, "We use Python, Kubernetes and docker.", "keywords")

	require.NoError(t, err)
	assert.Equal(t, "docker\nkubernetes\npython\n", out)
}

func TestKeywordsWithResumeScore(t *testing.T) {
	resumePath := writeFile(t, "resume.json", sampleResume)

	out, err := execute(t, "Python and Kubernetes", "keywords", "--resume", resumePath)

	require.NoError(t, err)
	assert.Contains(t, out, "match score: 50.00")
}

func TestSynthesize(t *testing.T) {
	resumePath := writeFile(t, "resume.json", sampleResume)
	jobPath := writeFile(t, "job.txt", "Python and Kubernetes")

	out, err := execute(t, "", "synthesize", "-r", resumePath, "-j", jobPath, "--title", "Engineer", "--score")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Jane Doe"), out)
	assert.Contains(t, out, "match score: 50.00")
}

func TestSynthesizeWithoutResume(t *testing.T) {
	out, err := execute(t, "", "synthesize")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Professional"), out)
}

func TestSynthesizeMissingFile(t *testing.T) {
	_, err := execute(t, "", "synthesize", "-r", filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestGateRejectsShortText(t *testing.T) {
	_, err := execute(t, "too short", "gate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "too_short")
}

func TestGateAccepts(t *testing.T) {
	text := "PROFESSIONAL SUMMARY\nSeasoned engineer.\n\nEXPERIENCE\n" + strings.Repeat("Built services in Go. ", 12)

	out, err := execute(t, text, "gate")

	require.NoError(t, err)
	assert.Equal(t, "accepted\n", out)
}

func TestGenerateTemplateWithoutProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "none")
	inPath := writeFile(t, "prompt.txt", "Write a resume for a Python developer")

	out, err := execute(t, "", "generate", "-i", inPath, "--title", "Engineer", "--json")

	require.NoError(t, err)
	var res struct {
		Output     string   `json:"output"`
		Source     string   `json:"source"`
		MatchScore *float64 `json:"match_score"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "template", res.Source)
	assert.True(t, strings.HasPrefix(res.Output, "# Professional"))
	require.NotNil(t, res.MatchScore)
	assert.Equal(t, 0.0, *res.MatchScore)
}

func TestGenerateJSONStdoutIsCleanWithoutKey(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "")
	inPath := writeFile(t, "prompt.txt", "Write a resume for a Go developer")

	out, errOut, err := executeSplit(t, "", "generate", "-i", inPath, "--json")

	require.NoError(t, err)
	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	assert.Equal(t, "template", res["source"])
	assert.Contains(t, errOut, "config.llm_key_missing")
}
