package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-generator/internal/gate"
	"resume-generator/internal/llm"
	"resume-generator/internal/matching"
	"resume-generator/internal/resume"
	"resume-generator/internal/shared/metrics"
	"resume-generator/internal/shared/telemetry"
	"resume-generator/internal/shared/util"
	"resume-generator/internal/synth"
)

// ErrEmptyInput is returned when a required free-text input is blank.
var ErrEmptyInput = errors.New("no input provided")

// ResumeRequest carries one resume generation call.
type ResumeRequest struct {
	Input          string
	Resume         []byte
	JobDescription string
	JobTitle       string
	CompanyName    string
}

// ResumeResult is what GenerateResume hands back. MatchScore is set only
// for template output.
type ResumeResult struct {
	Output     string
	Source     synth.Source
	MatchScore *float64
}

// Service runs the resume pipeline and the direct LLM operations.
type Service struct {
	LLM     llm.Generator
	Gate    gate.Gate
	Timeout time.Duration
}

// NewService constructs a Service. A nil generator behaves as unconfigured.
func NewService(gen llm.Generator, g gate.Gate, timeout time.Duration) *Service {
	if gen == nil {
		gen = llm.Placeholder{}
	}
	return &Service{LLM: gen, Gate: g, Timeout: timeout}
}

// GenerateResume never fails. It tries external generation once when input
// is present, falls back to the deterministic synthesizer, and as a last
// resort returns the fixed emergency document.
func (s *Service) GenerateResume(ctx context.Context, req ResumeRequest) (res ResumeResult) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("resume.generate.panic", map[string]any{
				"error":     fmt.Sprint(rec),
				"job_title": req.JobTitle,
			})
			res = ResumeResult{Output: synth.Emergency(req.JobTitle), Source: synth.SourceEmergency}
		}
		metrics.ObserveGeneration(string(res.Source), time.Since(start))
	}()

	telemetry.Info("resume.generate.start", map[string]any{
		"job_title":    req.JobTitle,
		"company_name": req.CompanyName,
		"input_length": len(req.Input),
		"input_sha":    util.Fingerprint(req.Input),
	})

	parsed := resume.Normalize(req.Resume)

	if strings.TrimSpace(req.Input) != "" {
		if text, ok := s.attemptAI(ctx, req.Input); ok {
			return ResumeResult{Output: text, Source: synth.SourceAI}
		}
	} else {
		metrics.AIAttemptsTotal.WithLabelValues("skipped").Inc()
	}

	jobText := req.JobDescription
	if strings.TrimSpace(jobText) == "" {
		jobText = req.Input
	}
	doc := synth.Synthesize(parsed, jobText, req.JobTitle, req.CompanyName)
	score := matching.Score(parsed, matching.ExtractKeywords(jobText))
	metrics.MatchScore.Observe(score)

	telemetry.Info("resume.generate.template", map[string]any{
		"match_score": score,
		"blocks":      len(doc.Blocks),
	})
	return ResumeResult{Output: doc.Markdown(), Source: synth.SourceTemplate, MatchScore: &score}
}

// attemptAI makes the single bounded call and runs the gate. Any error,
// timeout or rejection reports false.
func (s *Service) attemptAI(ctx context.Context, input string) (string, bool) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.generator().Generate(ctx, llm.UserMessage(input))
	if err != nil {
		outcome := "error"
		if errors.Is(err, context.DeadlineExceeded) {
			outcome = "timeout"
		}
		metrics.AIAttemptsTotal.WithLabelValues(outcome).Inc()
		telemetry.Warn("resume.generate.ai_failed", map[string]any{
			"error":   err,
			"outcome": outcome,
		})
		return "", false
	}

	text := llm.StripCodeFence(raw)
	verdict := s.Gate.Evaluate(text)
	if !verdict.Accepted {
		metrics.AIAttemptsTotal.WithLabelValues("rejected").Inc()
		metrics.GateRejectionsTotal.WithLabelValues(verdict.Reason).Inc()
		telemetry.Warn("resume.generate.ai_rejected", map[string]any{
			"reason":  verdict.Reason,
			"phrase":  verdict.Phrase,
			"length":  len(text),
			"preview": preview(text, 300),
		})
		return "", false
	}

	metrics.AIAttemptsTotal.WithLabelValues("accepted").Inc()
	telemetry.Info("resume.generate.ai_accepted", map[string]any{"length": len(text)})
	return text, true
}

// CoverLetter asks the generator for a cover letter built from input.
func (s *Service) CoverLetter(ctx context.Context, input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", ErrEmptyInput
	}
	return s.call(ctx, "cover_letter", llm.UserMessage(llm.CoverLetterPrompt(input)))
}

// MockInterview continues an interview conversation, opening one when
// messages is empty.
func (s *Service) MockInterview(ctx context.Context, messages []llm.Message) (string, error) {
	if len(messages) == 0 {
		messages = llm.UserMessage(llm.DefaultInterviewOpening)
	}
	return s.call(ctx, "mock_interview", messages)
}

func (s *Service) call(ctx context.Context, operation string, messages []llm.Message) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	out, err := s.generator().Generate(ctx, messages)
	if err != nil {
		metrics.LLMRequestsTotal.WithLabelValues(operation, "error").Inc()
		telemetry.Error("llm."+operation+".failed", map[string]any{"error": err})
		return "", err
	}
	metrics.LLMRequestsTotal.WithLabelValues(operation, "ok").Inc()
	return strings.TrimSpace(out), nil
}

func (s *Service) generator() llm.Generator {
	if s.LLM == nil {
		return llm.Placeholder{}
	}
	return s.LLM
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout > 0 {
		return context.WithTimeout(ctx, s.Timeout)
	}
	return context.WithCancel(ctx)
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
