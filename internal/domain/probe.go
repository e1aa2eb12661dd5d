package domain

// ProbeOutcome classifies a diagnostic round trip.
type ProbeOutcome string

const (
	ProbeSucceeded ProbeOutcome = "succeeded"
	// ProbeAPIError means a 2xx reply carried an embedded error object.
	ProbeAPIError ProbeOutcome = "api_error"
	// ProbeEmpty means the reply decoded but had no content.
	ProbeEmpty ProbeOutcome = "empty"
	// ProbeFailed covers transport failures, HTTP errors and missing credentials.
	ProbeFailed ProbeOutcome = "failed"
)

// ProbeResult is the outcome of a diagnostic round trip to the generative
// service. StatusCode is zero when no HTTP response was received.
type ProbeResult struct {
	Outcome    ProbeOutcome
	Message    string
	Result     string
	StatusCode int
	Kind       ErrorKind
	// Details holds the upstream error object for ProbeAPIError.
	Details map[string]interface{}
	// Response holds the decoded upstream body for ProbeEmpty.
	Response map[string]interface{}
	// ErrorData holds the raw upstream body for ProbeFailed.
	ErrorData string
}

// Success reports whether the probe got content back.
func (r ProbeResult) Success() bool {
	return r.Outcome == ProbeSucceeded
}
