package matching

import (
	"strings"

	"resume-generator/internal/resume"
)

// Score returns the percentage of keywords found in the resume's skills or
// experience bullets. An empty keyword set scores 0.
func Score(r resume.NormalizedResume, keywords KeywordSet) float64 {
	if len(keywords) == 0 {
		return 0
	}

	skills := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		skills = append(skills, strings.ToLower(s))
	}

	bullets := make([]string, 0, len(r.Experience))
	for _, e := range r.Experience {
		bullets = append(bullets, strings.Join(e.Bullets, " "))
	}
	narrative := strings.ToLower(strings.Join(bullets, " "))

	matches := 0
	for kw := range keywords {
		needle := strings.ToLower(kw)
		if strings.Contains(narrative, needle) || containsAny(skills, needle) {
			matches++
		}
	}
	return float64(matches) / float64(len(keywords)) * 100
}

func containsAny(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}
