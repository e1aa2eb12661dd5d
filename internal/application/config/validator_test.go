package config

import (
	"strings"
	"testing"

	"github.com/doeshing/movierec-go/internal/domain"
	infraconfig "github.com/doeshing/movierec-go/internal/infrastructure/config"
)

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := Validate(infraconfig.DefaultConfig()); err != nil {
		t.Fatalf("Validate(defaults) = %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.Config)
		want   string
	}{
		{"port", func(c *domain.Config) { c.Server.Port = 70000 }, "server.port"},
		{"endpoint", func(c *domain.Config) { c.Generative.Endpoint = "" }, "generative.endpoint"},
		{"relative endpoint", func(c *domain.Config) { c.Generative.Endpoint = "/v1/chat" }, "absolute URL"},
		{"timeout", func(c *domain.Config) { c.Generative.TimeoutSeconds = 0 }, "generative.timeout"},
		{"titles", func(c *domain.Config) { c.Generative.ExpectedTitles = 0 }, "expected_titles"},
		{"temperature", func(c *domain.Config) { t := 3.0; c.Generative.Temperature = &t }, "temperature"},
		{"database", func(c *domain.Config) { c.Storage.DatabasePath = " " }, "database_path"},
		{"queue", func(c *domain.Config) { c.Storage.QueueSize = 0 }, "queue_size"},
		{"level", func(c *domain.Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"format", func(c *domain.Config) { c.Logging.Format = "xml" }, "logging.format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := infraconfig.DefaultConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Validate error = %v, want containing %q", err, tc.want)
			}
		})
	}
}
