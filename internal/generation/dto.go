package generation

import (
	"bytes"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"

	"resume-generator/internal/llm"
)

const (
	defaultJobTitle    = "Position"
	defaultCompanyName = "Company"
)

var validate = validator.New()

// generateResumeRequest reads the resume body leniently. Any well-formed
// JSON is accepted; fields of the wrong type, or a non-object body, fall
// back to the same defaults as absent fields.
type generateResumeRequest struct {
	body gjson.Result
}

func parseGenerateResumeRequest(raw []byte) (generateResumeRequest, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return generateResumeRequest{}, nil
	}
	if !gjson.ValidBytes(raw) {
		return generateResumeRequest{}, errInvalidJSON
	}
	return generateResumeRequest{body: gjson.ParseBytes(raw)}, nil
}

// field returns the member named key when the body is an object.
func (r generateResumeRequest) field(key string) gjson.Result {
	if !r.body.IsObject() {
		return gjson.Result{}
	}
	return r.body.Get(key)
}

// text returns a string member unchanged, so an explicit "" is kept. Any
// other type, and an absent member, yields def.
func (r generateResumeRequest) text(key, def string) string {
	if v := r.field(key); v.Type == gjson.String {
		return v.Str
	}
	return def
}

func (r generateResumeRequest) toResumeRequest() ResumeRequest {
	var raw []byte
	if v := r.field("resume"); v.Exists() && v.Type != gjson.Null {
		raw = []byte(v.Raw)
	}
	return ResumeRequest{
		Input:          r.text("input", ""),
		Resume:         raw,
		JobDescription: r.text("jobDescription", ""),
		JobTitle:       r.text("jobTitle", defaultJobTitle),
		CompanyName:    r.text("companyName", defaultCompanyName),
	}
}

// GenerateResumeResponse is the body of POST /api/generate-resume.
type GenerateResumeResponse struct {
	Output     string   `json:"output"`
	Source     string   `json:"source"`
	MatchScore *float64 `json:"match_score,omitempty"`
}

func toGenerateResumeResponse(res ResumeResult) GenerateResumeResponse {
	return GenerateResumeResponse{
		Output:     res.Output,
		Source:     string(res.Source),
		MatchScore: res.MatchScore,
	}
}

type coverLetterRequest struct {
	Input string `json:"input"`
}

// OutputResponse wraps plain generated text.
type OutputResponse struct {
	Output string `json:"output"`
}

type interviewMessage struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

type mockInterviewRequest struct {
	Messages []interviewMessage `json:"messages" validate:"dive"`
}

func (r mockInterviewRequest) toMessages() []llm.Message {
	out := make([]llm.Message, 0, len(r.Messages))
	for _, m := range r.Messages {
		out = append(out, llm.Message{Role: m.Role, Content: m.Content})
	}
	return out
}

type keywordsRequest struct {
	Text string `json:"text"`
}

// KeywordsResponse lists extracted taxonomy terms in lexical order.
type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

type matchScoreRequest struct {
	Resume         json.RawMessage `json:"resume"`
	JobDescription string          `json:"jobDescription"`
}

// MatchScoreResponse reports keyword coverage of a resume.
type MatchScoreResponse struct {
	Score    float64  `json:"score"`
	Keywords []string `json:"keywords"`
}
