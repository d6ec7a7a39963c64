package synth

import "strings"

// Source tags where a generated document came from.
type Source string

const (
	SourceAI        Source = "ai"
	SourceTemplate  Source = "template"
	SourceEmergency Source = "emergency_fallback"
)

// BlockKind identifies the section a block belongs to.
type BlockKind string

const (
	BlockHeader         BlockKind = "header"
	BlockSummary        BlockKind = "summary"
	BlockSkills         BlockKind = "skills"
	BlockExperience     BlockKind = "experience"
	BlockEducation      BlockKind = "education"
	BlockProjects       BlockKind = "projects"
	BlockCertifications BlockKind = "certifications"
)

var headings = map[BlockKind]string{
	BlockSummary:        "PROFESSIONAL SUMMARY",
	BlockSkills:         "CORE COMPETENCIES & TECHNICAL SKILLS",
	BlockExperience:     "PROFESSIONAL EXPERIENCE",
	BlockEducation:      "EDUCATION",
	BlockProjects:       "TECHNICAL PROJECTS",
	BlockCertifications: "CERTIFICATIONS",
}

// Block is one rendered unit of a document. Experience, education and
// project entries each get their own block.
type Block struct {
	Kind BlockKind
	Text string
}

// Document is an ordered list of blocks.
type Document struct {
	Blocks []Block
}

// Has reports whether the document contains a block of kind k.
func (d Document) Has(k BlockKind) bool {
	return d.Count(k) > 0
}

// Count returns the number of blocks of kind k.
func (d Document) Count(k BlockKind) int {
	n := 0
	for _, b := range d.Blocks {
		if b.Kind == k {
			n++
		}
	}
	return n
}

// Markdown renders the document. Consecutive blocks of the same kind share
// one heading; sections are separated by horizontal rules.
func (d Document) Markdown() string {
	var sb strings.Builder
	var prev BlockKind
	for i, b := range d.Blocks {
		switch {
		case i == 0:
		case b.Kind == prev:
			sb.WriteString("\n\n")
		default:
			sb.WriteString("\n\n---\n\n")
		}
		if b.Kind != prev {
			if h, ok := headings[b.Kind]; ok {
				sb.WriteString("## ")
				sb.WriteString(h)
				sb.WriteString("\n\n")
			}
		}
		sb.WriteString(b.Text)
		prev = b.Kind
	}
	return sb.String()
}
