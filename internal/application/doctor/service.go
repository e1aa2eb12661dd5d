package doctor

import (
	"context"
	"fmt"

	configvalidator "github.com/doeshing/movierec-go/internal/application/config"
	"github.com/doeshing/movierec-go/internal/domain"
	"github.com/doeshing/movierec-go/internal/ports"
)

// Pinger is satisfied by stores that can check their connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Database       Pinger
	Prober         ports.UpstreamProber
	Fallback       ports.FallbackRecommender
}

// Run executes checks and returns a report. The upstream probe costs a real
// generative call and only runs when probe is true.
func (s *Service) Run(ctx context.Context, probe bool) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := configvalidator.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("format %s valid", cfg.ConfigFormatVersion)))
	}

	checks = append(checks, credentialCheck(cfg.Generative))

	if s.Database != nil {
		if err := s.Database.Ping(ctx); err != nil {
			checks = append(checks, fail("Request log", err.Error()))
		} else {
			checks = append(checks, ok("Request log", cfg.Storage.DatabasePath))
		}
	} else {
		checks = append(checks, warn("Request log", "store not initialized"))
	}

	if s.Fallback != nil {
		movies := domain.SplitMovies(s.Fallback.Recommend("doctor"))
		if len(movies) == 0 {
			checks = append(checks, fail("Fallback", "curated table returned no titles"))
		} else {
			checks = append(checks, ok("Fallback", fmt.Sprintf("%d titles for default genre", len(movies))))
		}
	}

	if probe && s.Prober != nil {
		checks = append(checks, probeCheck(s.Prober.Probe(ctx)))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func credentialCheck(gen domain.GenerativeSettings) domain.HealthCheck {
	if !gen.HasCredential() {
		return warn("API key", fmt.Sprintf("%s missing, every request will use the fallback", gen.AuthEnvVar))
	}
	return ok("API key", fmt.Sprintf("%s set", gen.AuthEnvVar))
}

func probeCheck(res domain.ProbeResult) domain.HealthCheck {
	if res.Success() {
		return ok("Generative service", fmt.Sprintf("status %d: %s", res.StatusCode, res.Result))
	}
	if res.StatusCode != 0 {
		return fail("Generative service", fmt.Sprintf("status %d: %s", res.StatusCode, res.Message))
	}
	return fail("Generative service", res.Message)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
