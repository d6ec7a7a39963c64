package llm

import (
	"context"
	"errors"
	"strings"
)

// Chat roles understood by every provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Generator produces free text from a conversation.
type Generator interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

// ErrNotConfigured is returned by the placeholder generator.
var ErrNotConfigured = errors.New("llm provider not configured")

// ErrEmptyResponse is returned when a provider answers without text.
var ErrEmptyResponse = errors.New("llm response empty")

// Placeholder is used when no provider is configured.
type Placeholder struct{}

// Generate returns ErrNotConfigured.
func (Placeholder) Generate(ctx context.Context, messages []Message) (string, error) {
	_ = ctx
	_ = messages
	return "", ErrNotConfigured
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, messages []Message) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, messages []Message) (string, error) {
	return f(ctx, messages)
}

// UserMessage wraps content as a single user turn.
func UserMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// StripCodeFence trims text and removes a wrapping ``` block. The opening
// fence line, which may carry a language tag, is dropped along with a
// closing fence on the last line.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	lines := strings.Split(text, "\n")
	lines = lines[1:]
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "```" {
		lines = lines[:n-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
