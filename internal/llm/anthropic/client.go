// Package anthropic implements llm.Generator on the Claude Messages API.
package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pkg/errors"

	"resume-generator/internal/llm"
	"resume-generator/internal/shared/telemetry"
)

const defaultMaxTokens = 4096

// Client sends conversations to one Claude model.
type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewClient builds a Claude client. Extra options are appended after the
// API key, so callers can point it at another base URL.
func NewClient(apiKey, model string, opts ...option.RequestOption) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ANTHROPIC_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("LLM_MODEL is required for Anthropic")
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Client{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: defaultMaxTokens,
	}, nil
}

// Generate sends the conversation. System turns are lifted into the system
// prompt.
func (c *Client) Generate(ctx context.Context, messages []llm.Message) (string, error) {
	params := buildParams(c.model, c.maxTokens, messages)
	if len(params.Messages) == 0 {
		return "", errors.New("anthropic conversation has no user turn")
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", errors.Wrap(err, "Claude API generation failed")
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errors.Wrap(llm.ErrEmptyResponse, "anthropic")
	}

	telemetry.Info("llm.response", map[string]any{
		"provider":      "anthropic",
		"model":         c.model,
		"input_tokens":  resp.Usage.InputTokens,
		"output_tokens": resp.Usage.OutputTokens,
	})
	return out, nil
}

func buildParams(model string, maxTokens int64, messages []llm.Message) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
	}
	for _, m := range messages {
		switch m.Role {
		case llm.RoleSystem:
			params.System = append(params.System, anthropic.TextBlockParam{Text: m.Content})
		case llm.RoleAssistant:
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			params.Messages = append(params.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	return params
}

var _ llm.Generator = (*Client)(nil)
