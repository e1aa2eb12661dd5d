// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The resolver depends only on these interfaces, so the
// generative service, the curated fallback and the request log can each be
// replaced by stubs in tests or by other implementations in production.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., GenerativeRecommender, RequestLog)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"
	"time"

	"github.com/doeshing/movierec-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read movierec.yaml plus environment overrides.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// GenerativeRecommender asks the external text-generation service for titles.
// It returns the trimmed reply verbatim or a *domain.GenerativeError.
// Exactly one outbound attempt is made per call.
type GenerativeRecommender interface {
	Name() string
	Fetch(ctx context.Context, preference string) (string, error)
}

// FallbackRecommender is a total, deterministic recommender.
type FallbackRecommender interface {
	Recommend(preference string) string
}

// RequestLog is the durable append-only store of request/response pairs.
type RequestLog interface {
	Insert(ctx context.Context, input, output string) (domain.LogEntry, error)
}

// HistoryReader exposes read access to the request log for operational tooling.
type HistoryReader interface {
	Records(ctx context.Context, limit int, search string) ([]domain.LogEntry, error)
}

// Recorder accepts log writes without blocking the caller. Failures are
// reported out of band.
type Recorder interface {
	Record(input, output string)
}

// UpstreamProber runs the diagnostic round trip against the generative service.
type UpstreamProber interface {
	Probe(ctx context.Context) domain.ProbeResult
}

// Metrics receives pipeline observations.
type Metrics interface {
	ObserveRecommendation(source domain.Source)
	ObserveGenerativeFailure(kind domain.ErrorKind)
	ObserveGenerativeDuration(d time.Duration)
	ObservePersistenceFailure(reason string)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
