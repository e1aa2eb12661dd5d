package ai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/doeshing/movierec-go/internal/domain"
	"github.com/doeshing/movierec-go/internal/ports"
)

// Prober sends a fixed prompt upstream and reports what came back, including
// the upstream status code. Used by GET /test-openai and `movierec test-openai`.
type Prober struct {
	client *chatClient
}

// NewProber shares the generative settings and timeout.
func NewProber(settings domain.GenerativeSettings, client *http.Client) *Prober {
	return &Prober{client: newChatClient(settings, client)}
}

// Probe makes a single attempt.
func (p *Prober) Probe(ctx context.Context) domain.ProbeResult {
	reply, err := p.client.send(ctx, userMessage(probePrompt))
	if err != nil {
		return domain.ProbeResult{
			Outcome: domain.ProbeFailed,
			Message: err.Error(),
			Kind:    domain.KindOf(err),
		}
	}

	object := decodeObject(reply.Body)
	decoded, decodeErr := parseChatCompletionResponse(reply.Body)

	if reply.StatusCode >= http.StatusBadRequest {
		message := fmt.Sprintf("upstream returned %d %s", reply.StatusCode, http.StatusText(reply.StatusCode))
		if decodeErr == nil && decoded.Error != nil && decoded.Error.Message != "" {
			message = decoded.Error.Message
		}
		return domain.ProbeResult{
			Outcome:    domain.ProbeFailed,
			Message:    message,
			StatusCode: reply.StatusCode,
			Kind:       domain.KindUpstream,
			ErrorData:  string(reply.Body),
		}
	}
	if decodeErr != nil {
		return domain.ProbeResult{
			Outcome:    domain.ProbeFailed,
			Message:    fmt.Sprintf("decode response: %v", decodeErr),
			StatusCode: reply.StatusCode,
			Kind:       domain.KindUpstream,
			ErrorData:  string(reply.Body),
		}
	}

	if decoded.Error != nil {
		message := decoded.Error.Message
		if message == "" {
			message = "API Error"
		}
		details, _ := object["error"].(map[string]interface{})
		return domain.ProbeResult{
			Outcome:    domain.ProbeAPIError,
			Message:    message,
			StatusCode: reply.StatusCode,
			Kind:       domain.KindUpstream,
			Details:    details,
		}
	}

	content := decoded.FirstMessage()
	if content == "" {
		return domain.ProbeResult{
			Outcome:    domain.ProbeEmpty,
			Message:    "No content in response",
			StatusCode: reply.StatusCode,
			Kind:       domain.KindUpstream,
			Response:   object,
		}
	}

	return domain.ProbeResult{
		Outcome:    domain.ProbeSucceeded,
		Message:    "OpenAI API is working!",
		Result:     content,
		StatusCode: reply.StatusCode,
	}
}

var _ ports.UpstreamProber = (*Prober)(nil)
