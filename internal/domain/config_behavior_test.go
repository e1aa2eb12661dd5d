package domain_test

import (
	"testing"
	"time"

	"github.com/doeshing/movierec-go/internal/domain"
)

func TestServerSettingsListenAddr(t *testing.T) {
	tests := []struct {
		name     string
		settings domain.ServerSettings
		want     string
	}{
		{"ipv4", domain.ServerSettings{Host: "0.0.0.0", Port: 5000}, "0.0.0.0:5000"},
		{"empty host", domain.ServerSettings{Port: 8080}, ":8080"},
		{"ipv6", domain.ServerSettings{Host: "::1", Port: 5000}, "[::1]:5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.ListenAddr(); got != tt.want {
				t.Errorf("ListenAddr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServerSettingsShutdownGrace(t *testing.T) {
	tests := []struct {
		seconds int
		want    time.Duration
	}{
		{0, domain.DefaultShutdownTimeout},
		{-3, domain.DefaultShutdownTimeout},
		{2, 2 * time.Second},
	}

	for _, tt := range tests {
		s := domain.ServerSettings{ShutdownTimeout: tt.seconds}
		if got := s.ShutdownGrace(); got != tt.want {
			t.Errorf("ShutdownGrace(%d) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

func TestServerSettingsAllowsAnyOrigin(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		want    bool
	}{
		{"unset", nil, true},
		{"wildcard", []string{"https://a.example", "*"}, true},
		{"restricted", []string{"https://a.example"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.ServerSettings{CORSOrigins: tt.origins}
			if got := s.AllowsAnyOrigin(); got != tt.want {
				t.Errorf("AllowsAnyOrigin() = %v, want %v", got, tt.want)
			}
		})
	}
}
