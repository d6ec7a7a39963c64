package resume

import (
	"fmt"

	"resume-generator/internal/shared/telemetry"
)

// Recognized section ids.
const (
	SectionSummary    = "summary"
	SectionSkills     = "skills"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionProjects   = "projects"
)

// Normalize converts an untrusted editor payload into a NormalizedResume.
// It never fails: invalid or oddly shaped input degrades to defaults.
func Normalize(raw []byte) NormalizedResume {
	if len(raw) == 0 {
		return Empty()
	}
	v, ok := Parse(raw)
	if !ok {
		telemetry.Warn("resume.normalize.invalid_json", map[string]any{
			"bytes": len(raw),
		})
		return Empty()
	}
	return NormalizeValue(v)
}

// NormalizeValue is Normalize over an already parsed Value.
func NormalizeValue(v Value) (out NormalizedResume) {
	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("resume.normalize.failed", map[string]any{
				"error": fmt.Sprint(rec),
			})
			out = Empty()
		}
	}()

	out = Empty()
	info := v.Get("personalInfo")
	out.Name = info.Get("name").Text()
	out.Email = info.Get("email").Text()
	out.Phone = info.Get("phone").Text()
	out.Location = info.Get("location").Text()
	out.LinkedIn = info.Get("linkedin").Text()
	out.GitHub = info.Get("github").Text()

	for _, raw := range v.Get("sections").Elems() {
		sec, ok := parseSection(raw)
		if !ok {
			continue
		}
		sec.apply(&out)
	}
	return out
}

// section is the tagged form of one recognized input section.
type section interface {
	apply(r *NormalizedResume)
}

type summarySection struct{ content string }

type skillsSection struct{ skills []string }

type experienceSection struct{ items []Experience }

type educationSection struct{ items []Education }

type projectsSection struct{ items []Project }

func (s summarySection) apply(r *NormalizedResume) { r.Summary = s.content }

func (s skillsSection) apply(r *NormalizedResume) { r.Skills = s.skills }

func (s experienceSection) apply(r *NormalizedResume) {
	r.Experience = append(r.Experience, s.items...)
}

func (s educationSection) apply(r *NormalizedResume) {
	r.Education = append(r.Education, s.items...)
}

func (s projectsSection) apply(r *NormalizedResume) {
	r.Projects = append(r.Projects, s.items...)
}

// parseSection validates and defaults one section. Unknown ids report false.
func parseSection(v Value) (section, bool) {
	items := v.Get("items").Elems()
	switch v.Get("id").Text() {
	case SectionSummary:
		return summarySection{content: v.Get("content").Text()}, true
	case SectionSkills:
		return skillsSection{skills: Flatten(v.Get("items"))}, true
	case SectionExperience:
		out := make([]Experience, 0, len(items))
		for _, item := range items {
			out = append(out, Experience{
				Position:  item.Get("position").Text(),
				Company:   item.Get("company").Text(),
				Location:  item.Get("location").Text(),
				StartDate: item.Get("startDate").Text(),
				EndDate:   item.Get("endDate").Text(),
				Bullets:   Flatten(item.Get("bullets")),
			})
		}
		return experienceSection{items: out}, true
	case SectionEducation:
		out := make([]Education, 0, len(items))
		for _, item := range items {
			out = append(out, Education{
				Degree:         item.Get("degree").Text(),
				School:         item.Get("school").Text(),
				Field:          item.Get("field").Text(),
				GraduationDate: item.Get("graduationDate").Text(),
			})
		}
		return educationSection{items: out}, true
	case SectionProjects:
		out := make([]Project, 0, len(items))
		for _, item := range items {
			out = append(out, Project{
				Title:        item.Get("title").Text(),
				Description:  item.Get("description").Text(),
				Technologies: Flatten(item.Get("technologies")),
			})
		}
		return projectsSection{items: out}, true
	default:
		return nil, false
	}
}
