package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/doeshing/movierec-go/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateServer(cfg.Server); err != nil {
		return err
	}
	if err := validateGenerative(cfg.Generative); err != nil {
		return err
	}
	if err := validateStorage(cfg.Storage); err != nil {
		return err
	}
	return validateLogging(cfg.Logging)
}

func validateServer(server domain.ServerSettings) error {
	if server.Port < 1 || server.Port > 65535 {
		return fmt.Errorf("server.port must be within 1..65535, got %d", server.Port)
	}
	if server.ShutdownTimeout < 0 {
		return errors.New("server.shutdown_timeout must be >= 0")
	}
	return nil
}

func validateGenerative(gen domain.GenerativeSettings) error {
	if gen.Endpoint == "" {
		return errors.New("generative.endpoint must be set")
	}
	parsed, err := url.Parse(gen.Endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("generative.endpoint must be an absolute URL, got %q", gen.Endpoint)
	}
	if gen.TimeoutSeconds <= 0 {
		return errors.New("generative.timeout must be > 0")
	}
	if gen.ExpectedTitles < 1 {
		return errors.New("generative.expected_titles must be >= 1")
	}
	if t := gen.SamplingTemperature(); t < 0 || t > 2 {
		return fmt.Errorf("generative.temperature must be within 0..2, got %v", t)
	}
	return nil
}

func validateStorage(storage domain.StorageSettings) error {
	if strings.TrimSpace(storage.DatabasePath) == "" {
		return errors.New("storage.database_path must be set")
	}
	if storage.QueueSize < 1 {
		return errors.New("storage.queue_size must be >= 1")
	}
	return nil
}

func validateLogging(logging domain.LoggingSettings) error {
	switch strings.ToLower(logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug|info|warn|error, got %s", logging.Level)
	}
	switch strings.ToLower(logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json|console, got %s", logging.Format)
	}
	return nil
}
