// Package domain defines core business entities and value objects for movierec.
//
// This file contains the generative service definition used to reach the
// external chat-completions endpoint. The domain layer is independent of
// infrastructure concerns and represents pure data structures.
package domain

import "time"

// GenerativeSettings describes the external text-generation endpoint.
// APIKey is resolved once at load time and is never serialized.
type GenerativeSettings struct {
	Endpoint       string   `yaml:"endpoint"`
	ModelID        string   `yaml:"model_id"`
	AuthEnvVar     string   `yaml:"auth_env_var"`
	OrgEnvVar      string   `yaml:"org_env_var,omitempty"`
	Temperature    *float64 `yaml:"temperature,omitempty"`
	TimeoutSeconds int      `yaml:"timeout"`
	ExpectedTitles int      `yaml:"expected_titles"`

	APIKey         string `yaml:"-"`
	OrganizationID string `yaml:"-"`
}

// Timeout returns the hard deadline for a single generative call.
func (g GenerativeSettings) Timeout() time.Duration {
	if g.TimeoutSeconds <= 0 {
		return DefaultGenerativeTimeout
	}
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// SamplingTemperature returns the configured temperature, which may be 0,
// or the default when none was set.
func (g GenerativeSettings) SamplingTemperature() float64 {
	if g.Temperature == nil {
		return DefaultTemperature
	}
	return *g.Temperature
}

// Titles returns how many titles a generative answer must contain.
func (g GenerativeSettings) Titles() int {
	if g.ExpectedTitles <= 0 {
		return DefaultRecommendationSize
	}
	return g.ExpectedTitles
}

// HasCredential reports whether an API key was configured.
func (g GenerativeSettings) HasCredential() bool {
	return g.APIKey != ""
}

// PromptMessage follows the role/content pair required by most chat APIs.
type PromptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
