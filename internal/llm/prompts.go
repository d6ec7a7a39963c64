package llm

const (
	coverLetterPrefix = "Generate a professional cover letter based on the following details:\n"

	// DefaultInterviewOpening seeds a mock interview with no prior turns.
	DefaultInterviewOpening = "Start a mock interview for a software engineering role."
)

// CoverLetterPrompt wraps the caller's details in the cover letter request.
func CoverLetterPrompt(details string) string {
	return coverLetterPrefix + details
}
