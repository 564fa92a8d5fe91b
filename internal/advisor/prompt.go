package advisor

import (
	"fmt"
	"strings"
	"text/template"

	"fedventura-backend/internal/llm"
)

var (
	recommendationTmpl = mustPromptTemplate(llm.PromptRecommendations)
	courseTmpl         = mustPromptTemplate(llm.PromptCourses)
)

func mustPromptTemplate(name string) *template.Template {
	text, ok := llm.PromptTemplate(name)
	if !ok {
		panic("advisor: unknown prompt template " + name)
	}
	return template.Must(template.New(name).Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(text))
}

// BuildRecommendationPrompt embeds the answers verbatim as key: value lines.
func BuildRecommendationPrompt(answers Answers) (string, error) {
	var b strings.Builder
	data := struct{ Answers []Entry }{Answers: answers.Ordered()}
	if err := recommendationTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render recommendation prompt: %w", err)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// BuildCoursePrompt embeds the idea title, skills and description verbatim.
func BuildCoursePrompt(idea BusinessIdea) (string, error) {
	var b strings.Builder
	data := struct {
		Title       string
		Skills      []string
		Description string
	}{
		Title:       idea.Title,
		Skills:      idea.SkillsNeeded,
		Description: idea.Description,
	}
	if err := courseTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render course prompt: %w", err)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
