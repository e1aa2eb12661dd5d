package ai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/doeshing/movierec-go/internal/domain"
	"github.com/doeshing/movierec-go/internal/ports"
)

// OpenAIRecommender asks an OpenAI-compatible chat-completions endpoint for
// a comma-separated list of titles. One attempt per call, no retries.
type OpenAIRecommender struct {
	client *chatClient
	count  int
}

// NewOpenAIRecommender builds the generative recommender. A nil client gets
// one whose timeout matches settings.
func NewOpenAIRecommender(settings domain.GenerativeSettings, client *http.Client) *OpenAIRecommender {
	return &OpenAIRecommender{
		client: newChatClient(settings, client),
		count:  settings.Titles(),
	}
}

func (r *OpenAIRecommender) Name() string {
	return "openai"
}

// Fetch returns the trimmed reply text verbatim. It does not check that the
// reply is really a list of titles.
func (r *OpenAIRecommender) Fetch(ctx context.Context, preference string) (string, error) {
	messages, err := renderRecommendationPrompt(preference, r.count)
	if err != nil {
		return "", domain.NewConfigError(fmt.Errorf("render prompt: %w", err))
	}

	reply, err := r.client.send(ctx, messages)
	if err != nil {
		return "", err
	}

	decoded, decodeErr := parseChatCompletionResponse(reply.Body)
	if decodeErr == nil && decoded.Error != nil {
		return "", domain.NewUpstreamError(reply.StatusCode, string(reply.Body),
			fmt.Errorf("openai api error: %s", decoded.Error.Message))
	}
	if reply.StatusCode >= http.StatusBadRequest {
		return "", domain.NewUpstreamError(reply.StatusCode, string(reply.Body),
			fmt.Errorf("openai: %s", http.StatusText(reply.StatusCode)))
	}
	if decodeErr != nil {
		return "", domain.NewUpstreamError(reply.StatusCode, string(reply.Body),
			fmt.Errorf("decode response: %w", decodeErr))
	}

	content := decoded.FirstMessage()
	if content == "" {
		return "", domain.NewUpstreamError(reply.StatusCode, string(reply.Body), domain.ErrEmptyCompletion)
	}
	return content, nil
}

var _ ports.GenerativeRecommender = (*OpenAIRecommender)(nil)
