package synth

import (
	"fmt"
	"strings"

	"resume-generator/internal/resume"
)

// Synthesize deterministically builds a complete resume from r. Every
// missing section is filled from fixed defaults except projects, which are
// rendered only when present. The job description argument does not
// influence content; keyword coverage is reported separately by the
// matching package.
func Synthesize(r resume.NormalizedResume, _, jobTitle, companyName string) Document {
	doc := Document{Blocks: make([]Block, 0, 16)}
	doc.Blocks = append(doc.Blocks, headerBlock(r))
	doc.Blocks = append(doc.Blocks, Block{Kind: BlockSummary, Text: summaryText(r, jobTitle, companyName)})
	doc.Blocks = append(doc.Blocks, Block{Kind: BlockSkills, Text: skillsText(r.Skills)})

	experience := r.Experience
	if len(experience) == 0 {
		experience = []resume.Experience{defaultExperience}
	}
	for _, e := range head(experience, maxExperience) {
		doc.Blocks = append(doc.Blocks, Block{Kind: BlockExperience, Text: experienceText(e)})
	}

	education := r.Education
	if len(education) == 0 {
		education = []resume.Education{defaultEducation}
	}
	for _, e := range head(education, maxEducation) {
		doc.Blocks = append(doc.Blocks, Block{Kind: BlockEducation, Text: educationText(e)})
	}

	for _, p := range head(r.Projects, maxProjects) {
		doc.Blocks = append(doc.Blocks, Block{Kind: BlockProjects, Text: projectText(p)})
	}

	doc.Blocks = append(doc.Blocks, Block{Kind: BlockCertifications, Text: bulletList(certifications)})
	return doc
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func headerBlock(r resume.NormalizedResume) Block {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = defaultName
	}

	contacts := []struct{ label, value string }{
		{"Email", r.Email},
		{"Phone", r.Phone},
		{"Location", r.Location},
		{"LinkedIn", r.LinkedIn},
		{"GitHub", r.GitHub},
	}
	parts := make([]string, 0, len(contacts))
	for _, c := range contacts {
		if v := strings.TrimSpace(c.value); v != "" {
			parts = append(parts, fmt.Sprintf("**%s:** %s", c.label, v))
		}
	}

	text := "# " + name
	if len(parts) > 0 {
		text += "\n\n" + strings.Join(parts, " | ")
	}
	return Block{Kind: BlockHeader, Text: text}
}

func summaryText(r resume.NormalizedResume, jobTitle, companyName string) string {
	if strings.TrimSpace(r.Summary) != "" {
		return r.Summary
	}
	title := strings.TrimSpace(jobTitle)
	if title == "" {
		title = defaultName
	}
	company := strings.TrimSpace(companyName)
	if company == "" {
		company = defaultCompany
	}
	return fmt.Sprintf(summaryTemplate, title, len(r.Experience), company)
}

// bucketSkills assigns each skill to the first bucket whose indicator it
// contains, case-insensitively. Unclaimed skills land in the trailing
// "Other" bucket. Empty buckets are kept so callers can index by position.
func bucketSkills(skills []string) [][]string {
	buckets := make([][]string, len(skillBuckets)+1)
	for _, s := range skills {
		lower := strings.ToLower(s)
		idx := len(skillBuckets)
		for i, b := range skillBuckets {
			if containsAny(lower, b.indicators) {
				idx = i
				break
			}
		}
		buckets[idx] = append(buckets[idx], s)
	}
	return buckets
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func skillsText(skills []string) string {
	if len(skills) == 0 {
		skills = defaultSkills
	}
	lines := make([]string, 0, len(skillBuckets)+1)
	for i, items := range bucketSkills(skills) {
		if len(items) == 0 {
			continue
		}
		label := otherBucketLabel
		if i < len(skillBuckets) {
			label = skillBuckets[i].label
		}
		lines = append(lines, fmt.Sprintf("**%s:** %s", label, strings.Join(head(items, maxSkillsPerBucket), ", ")))
	}
	return strings.Join(lines, "\n")
}

func experienceText(e resume.Experience) string {
	parts := make([]string, 0, 4)
	if v := strings.TrimSpace(e.Position); v != "" {
		parts = append(parts, "**"+v+"**")
	}
	if v := strings.TrimSpace(e.Company); v != "" {
		parts = append(parts, "**"+v+"**")
	}
	if v := strings.TrimSpace(e.Location); v != "" {
		parts = append(parts, v)
	}
	if dates := dateRange(e.StartDate, e.EndDate); dates != "" {
		parts = append(parts, dates)
	}
	if len(parts) == 0 {
		parts = append(parts, "**"+defaultExperience.Position+"**")
	}

	bullets := e.Bullets
	if len(bullets) == 0 {
		bullets = defaultBullets
	}
	return strings.Join(parts, " | ") + "\n\n" + bulletList(head(bullets, maxBullets))
}

func dateRange(start, end string) string {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	switch {
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return start
	default:
		return end
	}
}

func educationText(e resume.Education) string {
	lines := make([]string, 0, 3)
	if v := strings.TrimSpace(e.Degree); v != "" {
		lines = append(lines, "**"+v+"**")
	}
	details := make([]string, 0, 3)
	if v := strings.TrimSpace(e.School); v != "" {
		details = append(details, v)
	}
	if v := strings.TrimSpace(e.Field); v != "" {
		details = append(details, v)
	}
	if v := strings.TrimSpace(e.GraduationDate); v != "" {
		details = append(details, "Graduated: "+v)
	}
	if len(details) > 0 {
		lines = append(lines, strings.Join(details, " | "))
	}
	lines = append(lines, courseworkLine)
	return strings.Join(lines, "\n")
}

func projectText(p resume.Project) string {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = defaultProjectTitle
	}
	tech := defaultProjectTech
	if len(p.Technologies) > 0 {
		tech = strings.Join(p.Technologies, ", ")
	}
	desc := strings.TrimSpace(p.Description)
	if desc == "" {
		desc = defaultProjectDescription
	}
	return fmt.Sprintf("**%s** | %s\n- %s", title, tech, desc)
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
