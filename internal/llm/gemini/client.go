// Package gemini implements llm.Generator on Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"resume-generator/internal/llm"
	"resume-generator/internal/shared/telemetry"
)

const roleModel = "model"

// Client wraps a genai client bound to one model.
type Client struct {
	client    *genai.Client
	modelName string
}

// NewClient creates a Gemini client authenticated with apiKey.
func NewClient(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("LLM_MODEL is required for Gemini")
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}
	return &Client{client: client, modelName: model}, nil
}

// Generate replays all but the last turn as chat history and sends the last
// one. System turns become the model's system instruction.
func (c *Client) Generate(ctx context.Context, messages []llm.Message) (string, error) {
	system, history, last := splitConversation(messages)
	if last == "" {
		return "", errors.New("gemini conversation has no user turn")
	}

	model := c.client.GenerativeModel(c.modelName)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}
	cs := model.StartChat()
	cs.History = history

	resp, err := cs.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return "", errors.Wrap(err, "gemini generate content")
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}
	telemetry.Info("llm.response", map[string]any{"provider": "gemini", "model": c.modelName})
	return text, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func splitConversation(messages []llm.Message) (string, []*genai.Content, string) {
	var system []string
	turns := make([]llm.Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == llm.RoleSystem {
			system = append(system, m.Content)
			continue
		}
		turns = append(turns, m)
	}
	if len(turns) == 0 {
		return strings.Join(system, "\n\n"), nil, ""
	}

	history := make([]*genai.Content, 0, len(turns)-1)
	for _, m := range turns[:len(turns)-1] {
		role := llm.RoleUser
		if m.Role == llm.RoleAssistant {
			role = roleModel
		}
		history = append(history, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Content)}})
	}
	return strings.Join(system, "\n\n"), history, turns[len(turns)-1].Content
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("no candidates in gemini response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.Wrap(llm.ErrEmptyResponse, "gemini")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	out := strings.TrimSpace(strings.Join(parts, ""))
	if out == "" {
		return "", errors.Wrap(llm.ErrEmptyResponse, "gemini")
	}
	return out, nil
}

var _ llm.Generator = (*Client)(nil)
