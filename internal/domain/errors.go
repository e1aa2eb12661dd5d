package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies generative failures.
type ErrorKind string

const (
	KindConfig   ErrorKind = "config"
	KindTimeout  ErrorKind = "timeout"
	KindUpstream ErrorKind = "upstream"
)

var (
	ErrEmptyPreference         = errors.New("preference is required")
	ErrMissingCredential       = errors.New("generative credential not configured")
	ErrEmptyCompletion         = errors.New("no content in generative response")
	ErrMalformedRecommendation = errors.New("generative response is not a title list")
	ErrInvariant               = errors.New("recommendation invariant violated")
	ErrRecorderClosed          = errors.New("recorder closed")
	ErrRecorderFull            = errors.New("recorder queue full")
)

// GenerativeError is returned by the generative recommender for every
// failure. StatusCode is the upstream HTTP status when one was received.
type GenerativeError struct {
	Kind       ErrorKind
	StatusCode int
	Body       string
	Err        error
}

func (e *GenerativeError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generative %s error (status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("generative %s error: %v", e.Kind, e.Err)
}

func (e *GenerativeError) Unwrap() error {
	return e.Err
}

// NewConfigError wraps a missing or invalid configuration.
func NewConfigError(err error) *GenerativeError {
	return &GenerativeError{Kind: KindConfig, Err: err}
}

// NewTimeoutError wraps a call that exceeded its deadline.
func NewTimeoutError(err error) *GenerativeError {
	return &GenerativeError{Kind: KindTimeout, Err: err}
}

// NewUpstreamError wraps a malformed, empty or error payload.
func NewUpstreamError(status int, body string, err error) *GenerativeError {
	return &GenerativeError{Kind: KindUpstream, StatusCode: status, Body: body, Err: err}
}

// KindOf returns the kind of a generative error, or "" for anything else.
func KindOf(err error) ErrorKind {
	var genErr *GenerativeError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return ""
}

// PersistenceError reports a failed or dropped log write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
