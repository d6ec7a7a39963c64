package gate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" lorem", (n-len(s))/6+1)
}

func TestIsAcceptable_Empty(t *testing.T) {
	assert.False(t, Default().IsAcceptable(""))
	assert.Equal(t, ReasonEmpty, Default().Evaluate("").Reason)
}

func TestIsAcceptable_LengthThreshold(t *testing.T) {
	g := Default()

	v := g.Evaluate("# " + strings.Repeat("x", 198))
	assert.False(t, v.Accepted)
	assert.Equal(t, ReasonTooShort, v.Reason)

	assert.True(t, g.IsAcceptable("# "+strings.Repeat("x", 199)))
}

func TestIsAcceptable_NoMarkers(t *testing.T) {
	v := Default().Evaluate(strings.Repeat("x", 201))

	assert.False(t, v.Accepted)
	assert.Equal(t, ReasonNoMarkers, v.Reason)
}

func TestIsAcceptable_HeadingAndMarker(t *testing.T) {
	text := pad("# Jane Doe\n\n## EXPERIENCE\n", 300)[:300]

	assert.Len(t, text, 300)
	assert.True(t, Default().IsAcceptable(text))
}

func TestIsAcceptable_MarkerWithoutHeading(t *testing.T) {
	assert.True(t, Default().IsAcceptable(pad("Jane Doe\nprofessional summary\nbuilt systems", 260)))
	assert.True(t, Default().IsAcceptable(pad("Jane Doe\nEducation: MIT", 260)))
}

func TestIsAcceptable_LeadingWhitespaceBeforeHeading(t *testing.T) {
	assert.True(t, Default().IsAcceptable(pad("\n\n   # Jane", 260)))
}

func TestIsAcceptable_GuidePhraseRejectedRegardlessOfLength(t *testing.T) {
	text := "# Resume\n\nHere is a tailored resume for you.\n\n## EXPERIENCE\n" + strings.Repeat("Built things. ", 500)

	v := Default().Evaluate(text)

	assert.False(t, v.Accepted)
	assert.Equal(t, ReasonGuide, v.Reason)
	assert.Equal(t, "here is a", v.Phrase)
}

func TestIsAcceptable_GuidePhraseOutsideWindowIgnored(t *testing.T) {
	text := "# Jane Doe\n## EXPERIENCE\n" + strings.Repeat("a", 600) + " how to "

	assert.True(t, Default().IsAcceptable(text))
}

func TestIsAcceptable_ConfigurableThresholds(t *testing.T) {
	g := Gate{MinLength: 10, PrefixWindow: 5, RejectPhrases: []string{"draft"}}

	assert.True(t, g.IsAcceptable("# short resume"))
	assert.True(t, g.IsAcceptable("# res draft EXPERIENCE"))
	assert.False(t, g.IsAcceptable("draft # EXPERIENCE"))
	assert.True(t, g.IsAcceptable("# template EXPERIENCE"))
}

func TestIsAcceptable_ZeroValueUsesDefaults(t *testing.T) {
	var g Gate

	assert.False(t, g.IsAcceptable("# "+strings.Repeat("x", 100)))
	assert.False(t, g.IsAcceptable(pad("# tips for writing EXPERIENCE", 300)))
}

func TestRunePrefix(t *testing.T) {
	assert.Equal(t, "héł", runePrefix("héłło", 3))
	assert.Equal(t, "ab", runePrefix("ab", 10))
	assert.Equal(t, "", runePrefix("ab", 0))
}
