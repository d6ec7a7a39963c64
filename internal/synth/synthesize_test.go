package synth

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-generator/internal/resume"
)

func blocksOf(doc Document, kind BlockKind) []Block {
	var out []Block
	for _, b := range doc.Blocks {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

func TestSynthesize_EmptyResume(t *testing.T) {
	doc := Synthesize(resume.Empty(), "", "Backend Engineer", "Acme")

	assert.True(t, doc.Has(BlockSkills))
	assert.True(t, doc.Has(BlockExperience))
	assert.True(t, doc.Has(BlockEducation))
	assert.True(t, doc.Has(BlockCertifications))
	assert.False(t, doc.Has(BlockProjects))

	md := doc.Markdown()
	assert.Equal(t, "# Professional", strings.SplitN(md, "\n", 2)[0])
	assert.NotContains(t, md, "TECHNICAL PROJECTS")
	assert.Contains(t, md, "**Software Engineer** | **Technology Company** | Remote | 2020 - Present")
	assert.Contains(t, md, "**Bachelor of Science in Computer Science**")
	assert.Contains(t, md, "- Professional Scrum Master (PSM I)")

	for _, b := range doc.Blocks {
		assert.NotEmpty(t, strings.TrimSpace(b.Text), b.Kind)
	}
}

func TestSynthesize_BlockOrder(t *testing.T) {
	r := resume.Empty()
	r.Projects = []resume.Project{{Title: "P"}}

	doc := Synthesize(r, "", "Dev", "")

	kinds := make([]BlockKind, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		kinds = append(kinds, b.Kind)
	}
	assert.Equal(t, []BlockKind{
		BlockHeader, BlockSummary, BlockSkills, BlockExperience,
		BlockEducation, BlockProjects, BlockCertifications,
	}, kinds)
}

func TestSynthesize_HeaderContactLine(t *testing.T) {
	r := resume.Empty()
	r.Name = "Ada"
	r.Email = "ada@example.com"
	r.GitHub = "ada"
	r.Phone = "  "

	header := blocksOf(Synthesize(r, "", "", ""), BlockHeader)[0].Text

	assert.Equal(t, "# Ada\n\n**Email:** ada@example.com | **GitHub:** ada", header)
}

func TestSynthesize_HeaderWithoutContacts(t *testing.T) {
	header := blocksOf(Synthesize(resume.Empty(), "", "", ""), BlockHeader)[0].Text

	assert.Equal(t, "# Professional", header)
}

func TestSynthesize_SummaryVerbatimOrTemplated(t *testing.T) {
	r := resume.Empty()
	r.Summary = "My own words."
	assert.Equal(t, "My own words.", blocksOf(Synthesize(r, "", "X", "Y"), BlockSummary)[0].Text)

	r = resume.Empty()
	r.Experience = []resume.Experience{{}, {}}
	summary := blocksOf(Synthesize(r, "", "Backend Engineer", ""), BlockSummary)[0].Text
	assert.True(t, strings.HasPrefix(summary, "Highly motivated and results-driven Backend Engineer with 2+ years"))
	assert.Contains(t, summary, "cross-functional teams at leading organizations.")

	summary = blocksOf(Synthesize(resume.Empty(), "", "SRE", "Acme"), BlockSummary)[0].Text
	assert.Contains(t, summary, "with 0+ years")
	assert.Contains(t, summary, "teams at Acme.")
}

func TestSynthesize_DefaultSkillsBucketed(t *testing.T) {
	text := blocksOf(Synthesize(resume.Empty(), "", "", ""), BlockSkills)[0].Text

	assert.Equal(t, strings.Join([]string{
		"**Programming Languages:** Python, JavaScript",
		"**Frameworks & Libraries:** React, Node.js",
		"**Cloud & DevOps:** AWS, Docker",
		"**Databases:** SQL",
		"**Other:** Git",
	}, "\n"), text)
}

func TestBucketSkills_FirstMatchWins(t *testing.T) {
	buckets := bucketSkills([]string{"Django", "MongoDB", "Docker", "Communication", "Spring Boot"})

	// "django" and "mongodb" both contain "go", so languages claims them.
	assert.Equal(t, []string{"Django", "MongoDB"}, buckets[0])
	assert.Equal(t, []string{"Spring Boot"}, buckets[1])
	assert.Equal(t, []string{"Docker"}, buckets[2])
	assert.Empty(t, buckets[3])
	assert.Equal(t, []string{"Communication"}, buckets[4])
}

func TestSynthesize_SkillBucketCap(t *testing.T) {
	r := resume.Empty()
	for i := 0; i < 15; i++ {
		r.Skills = append(r.Skills, fmt.Sprintf("Skill%02d", i))
	}

	text := blocksOf(Synthesize(r, "", "", ""), BlockSkills)[0].Text

	assert.Contains(t, text, "Skill09")
	assert.NotContains(t, text, "Skill10")
	assert.Equal(t, 9, strings.Count(text, ", "))
}

func TestSynthesize_CapsExperienceAndBullets(t *testing.T) {
	r := resume.Empty()
	for i := 0; i < 10; i++ {
		e := resume.Experience{Position: fmt.Sprintf("Role%d", i), Company: "Co"}
		for j := 0; j < 20; j++ {
			e.Bullets = append(e.Bullets, fmt.Sprintf("bullet %d-%d", i, j))
		}
		r.Experience = append(r.Experience, e)
	}

	doc := Synthesize(r, "", "", "")
	blocks := blocksOf(doc, BlockExperience)

	require.Len(t, blocks, 3)
	for i, b := range blocks {
		assert.True(t, strings.HasPrefix(b.Text, fmt.Sprintf("**Role%d**", i)))
		assert.Equal(t, 6, strings.Count(b.Text, "- bullet"))
		assert.Contains(t, b.Text, fmt.Sprintf("bullet %d-5", i))
		assert.NotContains(t, b.Text, fmt.Sprintf("bullet %d-6", i))
	}
}

func TestSynthesize_DefaultBulletsForEmptyEntry(t *testing.T) {
	r := resume.Empty()
	r.Experience = []resume.Experience{{Position: "Dev", Company: "X", StartDate: "2021"}}

	text := blocksOf(Synthesize(r, "", "", ""), BlockExperience)[0].Text

	assert.True(t, strings.HasPrefix(text, "**Dev** | **X** | 2021\n\n"))
	for _, b := range defaultBullets {
		assert.Contains(t, text, "- "+b)
	}
}

func TestSynthesize_EducationCapAndCoursework(t *testing.T) {
	r := resume.Empty()
	r.Education = []resume.Education{
		{Degree: "BS", School: "A"},
		{Degree: "MS", School: "B", GraduationDate: "2019"},
		{Degree: "PhD", School: "C"},
	}

	blocks := blocksOf(Synthesize(r, "", "", ""), BlockEducation)

	require.Len(t, blocks, 2)
	assert.Equal(t, "**BS**\nA\n"+courseworkLine, blocks[0].Text)
	assert.Equal(t, "**MS**\nB | Graduated: 2019\n"+courseworkLine, blocks[1].Text)
}

func TestSynthesize_ProjectsCapped(t *testing.T) {
	r := resume.Empty()
	r.Projects = []resume.Project{
		{Title: "One", Description: "First", Technologies: []string{"Go", "gRPC"}},
		{Title: "Two"},
		{Title: "Three"},
	}

	blocks := blocksOf(Synthesize(r, "", "", ""), BlockProjects)

	require.Len(t, blocks, 2)
	assert.Equal(t, "**One** | Go, gRPC\n- First", blocks[0].Text)
	assert.Equal(t, "**Two** | Various Technologies\n- Developed comprehensive technical solution", blocks[1].Text)
}

func TestSynthesize_CertificationsConstant(t *testing.T) {
	a := blocksOf(Synthesize(resume.Empty(), "", "", ""), BlockCertifications)[0].Text

	r := resume.Empty()
	r.Name = "Someone"
	r.Skills = []string{"Rust"}
	b := blocksOf(Synthesize(r, "Rust and Go", "Title", "Co"), BlockCertifications)[0].Text

	assert.Equal(t, a, b)
	assert.Len(t, strings.Split(a, "\n"), 3)
}

func TestSynthesize_JobDescriptionDoesNotAlterContent(t *testing.T) {
	r := resume.Empty()
	r.Skills = []string{"Python"}

	a := Synthesize(r, "", "Dev", "Acme").Markdown()
	b := Synthesize(r, "Kubernetes, Rust, GraphQL", "Dev", "Acme").Markdown()

	assert.Equal(t, a, b)
}

func TestDocument_MarkdownSharesHeadings(t *testing.T) {
	r := resume.Empty()
	r.Experience = []resume.Experience{{Position: "A"}, {Position: "B"}}

	md := Synthesize(r, "", "", "").Markdown()

	assert.Equal(t, 1, strings.Count(md, "## PROFESSIONAL EXPERIENCE"))
	assert.Contains(t, md, "\n\n---\n\n## EDUCATION\n\n")
}

func TestEmergency(t *testing.T) {
	assert.Contains(t, Emergency("Data Scientist"), "seeking opportunities in Data Scientist.")
	assert.Contains(t, Emergency(""), "seeking opportunities in technology.")
	assert.True(t, strings.HasPrefix(Emergency(""), "# Professional Resume"))
}
