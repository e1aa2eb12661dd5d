package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/doeshing/movierec-go/internal/domain"
)

func TestCollectorCounts(t *testing.T) {
	c := New()
	c.ObserveRecommendation(domain.SourceFallback)
	c.ObserveRecommendation(domain.SourceFallback)
	c.ObserveRecommendation(domain.SourceGenerative)
	c.ObserveGenerativeFailure(domain.KindTimeout)
	c.ObserveGenerativeFailure("")
	c.ObservePersistenceFailure("queue_full")

	if got := testutil.ToFloat64(c.recommendations.WithLabelValues("fallback")); got != 2 {
		t.Fatalf("fallback count = %v", got)
	}
	if got := testutil.ToFloat64(c.generativeFailures.WithLabelValues("timeout")); got != 1 {
		t.Fatalf("timeout count = %v", got)
	}
	if got := testutil.ToFloat64(c.generativeFailures.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("unknown count = %v", got)
	}
	if got := testutil.ToFloat64(c.persistenceFailures.WithLabelValues("queue_full")); got != 1 {
		t.Fatalf("persistence count = %v", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := New()
	c.ObserveGenerativeDuration(300 * time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)

	if !strings.Contains(string(body), "movierec_generative_duration_seconds_count 1") {
		t.Fatalf("histogram missing from output:\n%s", body)
	}
}
