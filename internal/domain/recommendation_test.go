package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitMovies(t *testing.T) {
	cases := map[string][]string{
		"A, B ,C":                {"A", "B", "C"},
		" A ,, ,B, ":             {"A", "B"},
		"":                       {},
		"Fast & Furious, Se7en":  {"Fast & Furious", "Se7en"},
		"One single long answer": {"One single long answer"},
	}
	for in, want := range cases {
		if diff := cmp.Diff(want, SplitMovies(in)); diff != "" {
			t.Errorf("SplitMovies(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestRecommendationResultRaw(t *testing.T) {
	res := RecommendationResult{Movies: []string{"A", "B"}, Source: SourceFallback}
	if res.Raw() != "A, B" {
		t.Fatalf("Raw() = %q", res.Raw())
	}
}

func TestSourceWireName(t *testing.T) {
	if SourceGenerative.WireName() != "openai" || SourceFallback.WireName() != "fallback" {
		t.Fatal("unexpected wire names")
	}
}

func TestNewPreferenceRequest(t *testing.T) {
	req, err := NewPreferenceRequest("  sci fi  ")
	if err != nil || req.Text != "sci fi" {
		t.Fatalf("NewPreferenceRequest = %+v, %v", req, err)
	}
	if _, err := NewPreferenceRequest(" \t "); !errors.Is(err, ErrEmptyPreference) {
		t.Fatalf("expected ErrEmptyPreference, got %v", err)
	}
}

func TestKindOf(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), NewTimeoutError(errors.New("slow")))
	if KindOf(wrapped) != KindTimeout {
		t.Fatalf("KindOf = %q", KindOf(wrapped))
	}
	if KindOf(errors.New("plain")) != "" {
		t.Fatal("plain error should have no kind")
	}
	if !errors.Is(NewConfigError(ErrMissingCredential), ErrMissingCredential) {
		t.Fatal("config error should unwrap to its cause")
	}
}
