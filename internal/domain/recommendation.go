package domain

import "strings"

// Source tags which recommender answered a request.
type Source string

const (
	SourceGenerative Source = "generative"
	SourceFallback   Source = "fallback"
)

// WireName is the value clients see in the "source" field.
func (s Source) WireName() string {
	if s == SourceGenerative {
		return "openai"
	}
	return string(s)
}

// PreferenceRequest carries the free-text preference for one inbound call.
type PreferenceRequest struct {
	Text string
}

// NewPreferenceRequest trims the text and rejects empty preferences.
func NewPreferenceRequest(text string) (PreferenceRequest, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return PreferenceRequest{}, ErrEmptyPreference
	}
	return PreferenceRequest{Text: trimmed}, nil
}

// RecommendationResult is the resolver output. Movies is never empty.
type RecommendationResult struct {
	ID     string
	Movies []string
	Source Source
}

// Raw returns the comma-joined form sent on the wire and persisted.
func (r RecommendationResult) Raw() string {
	return JoinMovies(r.Movies)
}

// SplitMovies splits on commas, trims each title and drops empty fragments.
func SplitMovies(raw string) []string {
	parts := strings.Split(raw, ",")
	movies := make([]string, 0, len(parts))
	for _, part := range parts {
		title := strings.TrimSpace(part)
		if title == "" {
			continue
		}
		movies = append(movies, title)
	}
	return movies
}

// JoinMovies renders titles the way the curated table and the wire format do.
func JoinMovies(movies []string) string {
	return strings.Join(movies, ", ")
}
