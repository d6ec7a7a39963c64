package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-generator/internal/llm"
)

func TestIsGPT5(t *testing.T) {
	tests := []struct {
		name  string
		model string
		want  bool
	}{
		{name: "gpt5", model: "gpt-5", want: true},
		{name: "gpt5 variant", model: "gpt-5-mini", want: true},
		{name: "gpt5 uppercase", model: " GPT-5o ", want: true},
		{name: "gpt4", model: "gpt-4o", want: false},
		{name: "empty", model: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := isGPT5(tt.model); got != tt.want {
				t.Fatalf("isGPT5(%q) = %v, want %v", tt.model, got, tt.want)
			}
		})
	}
}

func withServer(t *testing.T, h http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(h)
	oldURL := apiURL
	apiURL = server.URL
	t.Cleanup(func() {
		apiURL = oldURL
		server.Close()
	})
}

func TestNewClientRequiresModelAndKey(t *testing.T) {
	_, err := NewClient("key", " ", 0)
	assert.Error(t, err)

	_, err = NewClient("", "gpt-4o", 0)
	assert.Error(t, err)

	c, err := NewClient("key", "gpt-4o", 0)
	require.NoError(t, err)
	assert.Equal(t, defaultTimeout, c.httpClient.Timeout)
}

func TestGenerateSendsConversation(t *testing.T) {
	var payload map[string]any
	var auth string
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&payload)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  # Jane  "}}],"usage":{"total_tokens":12}}`))
	})

	c, err := NewClient("secret", "gpt-4o", time.Second)
	require.NoError(t, err)

	out, err := c.Generate(context.Background(), []llm.Message{
		{Role: llm.RoleSystem, Content: "be brief"},
		{Role: llm.RoleUser, Content: "write"},
	})

	require.NoError(t, err)
	assert.Equal(t, "# Jane", out)
	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "gpt-4o", payload["model"])
	assert.Contains(t, payload, "temperature")
	msgs, ok := payload["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
}

func TestGenerateOmitsTemperatureForGPT5(t *testing.T) {
	var payload map[string]any
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&payload)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	})

	c, err := NewClient("k", "gpt-5-mini", time.Second)
	require.NoError(t, err)
	_, err = c.Generate(context.Background(), llm.UserMessage("x"))

	require.NoError(t, err)
	assert.NotContains(t, payload, "temperature")
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		empty  bool
	}{
		{name: "api error", status: http.StatusUnauthorized, body: `{"error":{"message":"bad key","type":"auth"}}`},
		{name: "non json error", status: http.StatusBadGateway, body: `upstream down`},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`},
		{name: "empty content", status: http.StatusOK, body: `{"choices":[{"message":{"content":"   "}}]}`, empty: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			withServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			c, err := NewClient("k", "gpt-4o", time.Second)
			require.NoError(t, err)

			out, err := c.Generate(context.Background(), llm.UserMessage("x"))

			assert.Error(t, err)
			assert.Empty(t, out)
			assert.Equal(t, tt.empty, errors.Is(err, llm.ErrEmptyResponse))
		})
	}
}

func TestGenerateHonorsContext(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	c, err := NewClient("k", "gpt-4o", 5*time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.Generate(ctx, llm.UserMessage("x"))

	assert.Error(t, err)
}
