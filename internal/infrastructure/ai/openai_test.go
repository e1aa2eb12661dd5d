package ai

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/doeshing/movierec-go/internal/domain"
)

func testSettings(endpoint string) domain.GenerativeSettings {
	return domain.GenerativeSettings{
		Endpoint:       endpoint,
		ModelID:        domain.DefaultGenerativeModel,
		TimeoutSeconds: 15,
		ExpectedTitles: 5,
		APIKey:         "sk-test",
	}
}

func TestOpenAIRecommenderFetchSuccess(t *testing.T) {
	var captured chatCompletionRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"  Heat, Ronin, Collateral, Drive, Sicario \n"}}]}`)
	}))
	defer server.Close()

	rec := NewOpenAIRecommender(testSettings(server.URL), server.Client())
	got, err := rec.Fetch(context.Background(), "  moody crime  ")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got != "Heat, Ronin, Collateral, Drive, Sicario" {
		t.Fatalf("Fetch() = %q", got)
	}
	if auth != "Bearer sk-test" {
		t.Fatalf("authorization header = %q", auth)
	}
	if captured.Model != "gpt-3.5-turbo" || captured.Temperature != 0.7 {
		t.Fatalf("unexpected request: %+v", captured)
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Role != "user" {
		t.Fatalf("expected a single user message, got %+v", captured.Messages)
	}
	wantPrompt := "Suggest exactly 5 movies based on this preference: moody crime. Return ONLY a comma-separated list of movie names, nothing else."
	if captured.Messages[0].Content != wantPrompt {
		t.Fatalf("prompt = %q", captured.Messages[0].Content)
	}
}

func TestOpenAIRecommenderMissingCredentialSkipsNetwork(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	settings := testSettings(server.URL)
	settings.APIKey = ""
	_, err := NewOpenAIRecommender(settings, server.Client()).Fetch(context.Background(), "action")

	if domain.KindOf(err) != domain.KindConfig {
		t.Fatalf("expected config error, got %v", err)
	}
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	if called {
		t.Fatal("network call made without credential")
	}
}

func TestOpenAIRecommenderUpstreamFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		is     error
	}{
		{name: "embedded error on 200", status: http.StatusOK, body: `{"error":{"message":"quota exceeded","type":"insufficient_quota"}}`},
		{name: "http error", status: http.StatusUnauthorized, body: `{"error":{"message":"bad key"}}`},
		{name: "http error without body", status: http.StatusBadGateway, body: ``},
		{name: "empty choices", status: http.StatusOK, body: `{"choices":[]}`, is: domain.ErrEmptyCompletion},
		{name: "blank content", status: http.StatusOK, body: `{"choices":[{"message":{"content":"   "}}]}`, is: domain.ErrEmptyCompletion},
		{name: "not json", status: http.StatusOK, body: `<html>oops</html>`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer server.Close()

			_, err := NewOpenAIRecommender(testSettings(server.URL), server.Client()).Fetch(context.Background(), "action")
			if domain.KindOf(err) != domain.KindUpstream {
				t.Fatalf("expected upstream error, got %v", err)
			}
			var genErr *domain.GenerativeError
			if !errors.As(err, &genErr) || genErr.StatusCode != tc.status {
				t.Fatalf("expected status %d on error, got %+v", tc.status, genErr)
			}
			if tc.is != nil && !errors.Is(err, tc.is) {
				t.Fatalf("expected %v, got %v", tc.is, err)
			}
		})
	}
}

func TestOpenAIRecommenderTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	rec := NewOpenAIRecommender(testSettings(server.URL), server.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, err := rec.Fetch(ctx, "action")

	if domain.KindOf(err) != domain.KindTimeout {
		t.Fatalf("expected timeout error, got %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Fatal("timeout not enforced")
	}
}

func TestOpenAIRecommenderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewOpenAIRecommender(testSettings(url), nil).Fetch(context.Background(), "action")
	if kind := domain.KindOf(err); kind != domain.KindUpstream && kind != domain.KindTimeout {
		t.Fatalf("expected transport failure, got %v", err)
	}
}

func TestRenderRecommendationPromptUsesCount(t *testing.T) {
	msgs, err := renderRecommendationPrompt("space opera", 3)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.HasPrefix(msgs[0].Content, "Suggest exactly 3 movies based on this preference: space opera.") {
		t.Fatalf("prompt = %q", msgs[0].Content)
	}
}

func TestOpenAIRecommenderSendsZeroTemperature(t *testing.T) {
	var raw map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &raw)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"Heat, Ronin"}}]}`)
	}))
	defer server.Close()

	settings := testSettings(server.URL)
	zero := 0.0
	settings.Temperature = &zero
	if _, err := NewOpenAIRecommender(settings, server.Client()).Fetch(context.Background(), "crime"); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	got, ok := raw["temperature"]
	if !ok {
		t.Fatalf("temperature missing from request: %v", raw)
	}
	if got != float64(0) {
		t.Fatalf("temperature = %v, want 0", got)
	}
}
