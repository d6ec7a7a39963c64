package synth

import "resume-generator/internal/resume"

const (
	defaultName    = "Professional"
	defaultCompany = "leading organizations"

	maxSkillsPerBucket = 10
	maxExperience      = 3
	maxBullets         = 6
	maxEducation       = 2
	maxProjects        = 2

	summaryTemplate = "Highly motivated and results-driven %s with %d+ years of professional experience " +
		"in software development and technology solutions. Demonstrated expertise in leveraging cutting-edge " +
		"technologies to drive business growth and operational excellence. Proven track record of successfully " +
		"delivering complex projects while collaborating with cross-functional teams at %s. " +
		"Known for strong analytical thinking, problem-solving abilities, and commitment to continuous learning. " +
		"Seeking to contribute technical expertise and leadership skills to advance organizational objectives " +
		"and create measurable business impact."

	courseworkLine = "**Relevant Coursework:** Data Structures, Algorithms, Database Systems, Software Engineering, Machine Learning, Cloud Computing"

	defaultProjectTitle       = "Technical Project"
	defaultProjectDescription = "Developed comprehensive technical solution"
	defaultProjectTech        = "Various Technologies"
)

var defaultSkills = []string{"Python", "JavaScript", "React", "Node.js", "SQL", "AWS", "Docker", "Git"}

var defaultExperience = resume.Experience{
	Position:  "Software Engineer",
	Company:   "Technology Company",
	Location:  "Remote",
	StartDate: "2020",
	EndDate:   "Present",
	Bullets:   []string{},
}

var defaultBullets = []string{
	"Architected and implemented scalable solutions serving over 100,000+ users, resulting in 40% improvement in system performance and 99.9% uptime achievement through robust error handling and monitoring systems",
	"Led cross-functional team in developing and deploying cloud-native applications on AWS infrastructure, reducing deployment time by 60% through implementation of automated CI/CD pipelines and infrastructure-as-code practices",
	"Designed and optimized complex database schemas and queries for high-traffic applications, achieving 50% reduction in query response time and improving overall application throughput",
	"Spearheaded adoption of modern development practices including test-driven development, code reviews, and agile methodologies, increasing code quality metrics by 45% and reducing production bugs by 35%",
	"Collaborated directly with product managers and stakeholders to translate business requirements into technical specifications, delivering 15+ major features ahead of schedule and under budget",
	"Mentored junior developers through code reviews and pair programming sessions, accelerating team onboarding time by 40% and fostering culture of continuous learning and technical excellence",
}

var defaultEducation = resume.Education{
	Degree:         "Bachelor of Science in Computer Science",
	School:         "University of Technology",
	Field:          "Computer Science",
	GraduationDate: "2020",
}

var certifications = []string{
	"AWS Certified Solutions Architect - Associate",
	"Professional Scrum Master (PSM I)",
	"Relevant Industry Certifications",
}

// skillBucket is a labeled group of indicator substrings. Buckets are tested
// in slice order and the first match claims the skill; the order is an
// arbitrary tie-break kept stable for output compatibility.
type skillBucket struct {
	label      string
	indicators []string
}

var skillBuckets = []skillBucket{
	{label: "Programming Languages", indicators: []string{"python", "java", "javascript", "c++", "go", "typescript", "ruby", "php"}},
	{label: "Frameworks & Libraries", indicators: []string{"react", "angular", "vue", "django", "flask", "spring", "express", "node"}},
	{label: "Cloud & DevOps", indicators: []string{"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "ci/cd"}},
	{label: "Databases", indicators: []string{"sql", "mysql", "postgres", "mongo", "redis", "elastic"}},
}

const otherBucketLabel = "Other"
