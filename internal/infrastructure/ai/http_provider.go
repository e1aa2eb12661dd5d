package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/doeshing/movierec-go/internal/domain"
)

// maxResponseBytes caps how much of an upstream reply is read.
const maxResponseBytes = 1 << 20

// chatClient performs one chat-completions round trip. It does not
// interpret the reply beyond reading it.
type chatClient struct {
	settings   domain.GenerativeSettings
	httpClient *http.Client
}

// exchange is a raw upstream reply.
type exchange struct {
	StatusCode int
	Body       []byte
}

func newChatClient(settings domain.GenerativeSettings, client *http.Client) *chatClient {
	if client == nil {
		client = &http.Client{Timeout: settings.Timeout()}
	}
	return &chatClient{settings: settings, httpClient: client}
}

// send posts messages with a hard deadline of settings.Timeout(). A nil
// error means a response was received, whatever its status.
func (c *chatClient) send(ctx context.Context, messages []domain.PromptMessage) (exchange, error) {
	if !c.settings.HasCredential() {
		return exchange{}, domain.NewConfigError(
			fmt.Errorf("%w: set %s", domain.ErrMissingCredential, valueOrDefault(c.settings.AuthEnvVar, domain.DefaultAuthEnvVar)))
	}

	requestBody, err := buildChatCompletionRequest(c.settings, messages)
	if err != nil {
		return exchange{}, domain.NewUpstreamError(0, "", fmt.Errorf("encode request: %w", err))
	}

	ctx, cancel := context.WithTimeout(ctx, c.settings.Timeout())
	defer cancel()

	endpoint := valueOrDefault(c.settings.Endpoint, domain.DefaultGenerativeEndpoint)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return exchange{}, domain.NewConfigError(fmt.Errorf("build request: %w", err))
	}
	httpReq.Header.Set("content-type", "application/json")
	setOpenAIHeaders(httpReq, c.settings)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return exchange{}, classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return exchange{}, classifyTransportError(err)
	}
	return exchange{StatusCode: resp.StatusCode, Body: body}, nil
}

func setOpenAIHeaders(req *http.Request, settings domain.GenerativeSettings) {
	req.Header.Set("authorization", "Bearer "+settings.APIKey)
	if settings.OrganizationID != "" {
		req.Header.Set("OpenAI-Organization", settings.OrganizationID)
	}
}

func classifyTransportError(err error) error {
	if isTimeout(err) {
		return domain.NewTimeoutError(err)
	}
	return domain.NewUpstreamError(0, "", err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
