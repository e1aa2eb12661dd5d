package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/movierec-go/internal/domain"
)

func TestRenderRecommendation(t *testing.T) {
	var buf bytes.Buffer
	renderRecommendation(&buf, domain.RecommendationResult{
		Movies: []string{"Inception", "Dune"},
		Source: domain.SourceGenerative,
	})

	want := "Recommendations (source: openai)\n  1. Inception\n  2. Dune\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderProbe(t *testing.T) {
	tests := []struct {
		name string
		res  domain.ProbeResult
		want string
	}{
		{
			name: "success",
			res:  domain.ProbeResult{Outcome: domain.ProbeSucceeded, Message: "OpenAI API is working!", Result: "A, B, C", StatusCode: 200},
			want: "Status: SUCCEEDED\nMessage: OpenAI API is working!\nResult: A, B, C\nHTTP status: 200\n",
		},
		{
			name: "api error details sorted",
			res: domain.ProbeResult{
				Outcome:    domain.ProbeAPIError,
				Message:    "bad key",
				StatusCode: 401,
				Kind:       domain.KindUpstream,
				Details:    map[string]interface{}{"type": "auth", "code": "invalid_api_key"},
			},
			want: "Status: API_ERROR\nMessage: bad key\nHTTP status: 401\nError kind: upstream\nDetails:\n  code: invalid_api_key\n  type: auth\n",
		},
		{
			name: "failure with body",
			res:  domain.ProbeResult{Outcome: domain.ProbeFailed, Message: "upstream returned 502 Bad Gateway", StatusCode: 502, Kind: domain.KindUpstream, ErrorData: "oops"},
			want: "Status: FAILED\nMessage: upstream returned 502 Bad Gateway\nHTTP status: 502\nError kind: upstream\nBody: oops\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			renderProbe(&buf, tt.res)
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderEntries(t *testing.T) {
	var buf bytes.Buffer
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	renderEntries(&buf, []domain.LogEntry{{ID: 7, Input: "sci-fi", Output: "Dune, Arrival", Timestamp: ts}})

	want := "7 | 2024-03-01T12:00:00Z | sci-fi | Dune, Arrival\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}
