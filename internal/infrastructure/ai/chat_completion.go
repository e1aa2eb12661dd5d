package ai

import (
	"strings"

	"github.com/goccy/go-json"

	"github.com/doeshing/movierec-go/internal/domain"
)

type chatCompletionRequest struct {
	Model       string                 `json:"model"`
	Messages    []domain.PromptMessage `json:"messages"`
	Temperature float64                `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message domain.PromptMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

// apiError is the "error" object OpenAI-compatible services embed in a reply.
type apiError struct {
	Message string      `json:"message"`
	Type    string      `json:"type"`
	Code    interface{} `json:"code"`
}

func (c chatCompletionResponse) FirstMessage() string {
	if len(c.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(c.Choices[0].Message.Content)
}

func buildChatCompletionRequest(settings domain.GenerativeSettings, messages []domain.PromptMessage) ([]byte, error) {
	return json.Marshal(chatCompletionRequest{
		Model:       valueOrDefault(settings.ModelID, domain.DefaultGenerativeModel),
		Messages:    messages,
		Temperature: settings.SamplingTemperature(),
	})
}

func parseChatCompletionResponse(body []byte) (chatCompletionResponse, error) {
	var decoded chatCompletionResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return chatCompletionResponse{}, err
	}
	return decoded, nil
}

// decodeObject returns the body as a generic JSON object, or nil.
func decodeObject(body []byte) map[string]interface{} {
	var out map[string]interface{}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil
	}
	return out
}

func valueOrDefault(value string, def string) string {
	if value == "" {
		return def
	}
	return value
}
