package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "  # Resume  ", want: "# Resume"},
		{name: "tagged fence", in: "```markdown\n# Resume\nbody\n```", want: "# Resume\nbody"},
		{name: "bare fence", in: "```\n# Resume\n```\n", want: "# Resume"},
		{name: "unterminated", in: "```md\n# Resume", want: "# Resume"},
		{name: "fence only", in: "```", want: ""},
		{name: "inner fence kept", in: "# A\n```go\nx\n```", want: "# A\n```go\nx\n```"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.in))
		})
	}
}

func TestPlaceholder(t *testing.T) {
	out, err := Placeholder{}.Generate(context.Background(), UserMessage("hi"))

	assert.Empty(t, out)
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestGeneratorFunc(t *testing.T) {
	var got []Message
	g := GeneratorFunc(func(_ context.Context, m []Message) (string, error) {
		got = m
		return "ok", nil
	})

	out, err := g.Generate(context.Background(), UserMessage("hello"))

	assert.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, []Message{{Role: RoleUser, Content: "hello"}}, got)
}

func TestCoverLetterPrompt(t *testing.T) {
	assert.Equal(t,
		"Generate a professional cover letter based on the following details:\nSenior SRE at Acme",
		CoverLetterPrompt("Senior SRE at Acme"))
}
