package llm

import _ "embed"

var (
	//go:embed prompts/recommendations_v1.txt
	promptRecommendationsV1 string
	//go:embed prompts/courses_v1.txt
	promptCoursesV1 string
)

const (
	PromptRecommendations = "recommendations"
	PromptCourses         = "courses"
)

// PromptTemplate returns the prompt template text and whether the name was recognized.
func PromptTemplate(name string) (string, bool) {
	switch name {
	case PromptRecommendations:
		return promptRecommendationsV1, true
	case PromptCourses:
		return promptCoursesV1, true
	default:
		return "", false
	}
}
