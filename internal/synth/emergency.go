package synth

import (
	"fmt"
	"strings"
)

const emergencyTemplate = `# Professional Resume

**Email:** user@example.com | **Phone:** (555) 123-4567

## PROFESSIONAL SUMMARY

Experienced professional seeking opportunities in %s.

## SKILLS

Python, JavaScript, React, Node.js, SQL, AWS, Docker, Git

## EXPERIENCE

**Software Engineer** | **Technology Company** | 2020 - Present

- Developed and maintained production systems
- Collaborated with cross-functional teams
- Implemented best practices and code reviews

## EDUCATION

**Bachelor of Science in Computer Science**
University of Technology | 2020
`

// Emergency returns the fixed last-resort resume used when the generation
// pipeline itself fails.
func Emergency(jobTitle string) string {
	title := strings.TrimSpace(jobTitle)
	if title == "" {
		title = "technology"
	}
	return fmt.Sprintf(emergencyTemplate, title)
}
