// Package gate decides whether externally generated text looks like a
// resume. The checks are heuristics: a good resume can be rejected and a
// verbose guide can slip through. Callers treat a rejection exactly like a
// failed generation.
package gate

import (
	"strings"
	"unicode/utf8"
)

const (
	DefaultMinLength    = 200
	DefaultPrefixWindow = 500
)

// DefaultRejectPhrases flag responses that describe how to write a resume
// instead of being one.
var DefaultRejectPhrases = []string{
	"template",
	"example resume",
	"here is a",
	"tips for",
	"how to",
	"guide to",
	"sample resume",
}

var resumeMarkers = []string{"PROFESSIONAL SUMMARY", "EXPERIENCE", "EDUCATION"}

// Rejection reasons reported in Verdict.Reason.
const (
	ReasonEmpty     = "empty"
	ReasonTooShort  = "too_short"
	ReasonGuide     = "guide_phrase"
	ReasonNoMarkers = "no_resume_markers"
)

// Gate holds the thresholds. Zero fields fall back to the defaults.
type Gate struct {
	MinLength     int
	PrefixWindow  int
	RejectPhrases []string
}

// Verdict is the outcome of evaluating one candidate text.
type Verdict struct {
	Accepted bool
	Reason   string
	Phrase   string
}

// Default returns a Gate with the stock thresholds.
func Default() Gate {
	return Gate{
		MinLength:     DefaultMinLength,
		PrefixWindow:  DefaultPrefixWindow,
		RejectPhrases: DefaultRejectPhrases,
	}
}

// IsAcceptable reports whether text passes the gate.
func (g Gate) IsAcceptable(text string) bool {
	return g.Evaluate(text).Accepted
}

// Evaluate classifies text. Lengths are counted in runes.
func (g Gate) Evaluate(text string) Verdict {
	minLen := g.MinLength
	if minLen <= 0 {
		minLen = DefaultMinLength
	}
	window := g.PrefixWindow
	if window <= 0 {
		window = DefaultPrefixWindow
	}
	phrases := g.RejectPhrases
	if phrases == nil {
		phrases = DefaultRejectPhrases
	}

	if text == "" {
		return Verdict{Reason: ReasonEmpty}
	}
	if utf8.RuneCountInString(text) <= minLen {
		return Verdict{Reason: ReasonTooShort}
	}

	prefix := strings.ToLower(runePrefix(text, window))
	for _, p := range phrases {
		if strings.Contains(prefix, p) {
			return Verdict{Reason: ReasonGuide, Phrase: p}
		}
	}

	if strings.HasPrefix(strings.TrimSpace(text), "#") {
		return Verdict{Accepted: true}
	}
	upper := strings.ToUpper(text)
	for _, m := range resumeMarkers {
		if strings.Contains(upper, m) {
			return Verdict{Accepted: true}
		}
	}
	return Verdict{Reason: ReasonNoMarkers}
}

func runePrefix(s string, n int) string {
	i := 0
	for idx := range s {
		if i == n {
			return s[:idx]
		}
		i++
	}
	return s
}
