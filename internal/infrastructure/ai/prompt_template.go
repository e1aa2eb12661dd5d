package ai

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/doeshing/movierec-go/internal/domain"
)

var recommendationTemplate = template.Must(template.New("recommend").Parse(
	"Suggest exactly {{.Count}} movies based on this preference: {{.Preference}}. " +
		"Return ONLY a comma-separated list of movie names, nothing else.",
))

const probePrompt = "Name 3 famous movies. Return only names separated by commas."

type templateData struct {
	Count      int
	Preference string
}

// renderRecommendationPrompt builds the single-turn user message.
func renderRecommendationPrompt(preference string, count int) ([]domain.PromptMessage, error) {
	var buf bytes.Buffer
	if err := recommendationTemplate.Execute(&buf, templateData{
		Count:      count,
		Preference: strings.TrimSpace(preference),
	}); err != nil {
		return nil, err
	}
	return userMessage(buf.String()), nil
}

func userMessage(content string) []domain.PromptMessage {
	return []domain.PromptMessage{{Role: "user", Content: strings.TrimSpace(content)}}
}
