package commands

// Error messages
const (
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrHistoryStoreUnavailable  = "history store unavailable"
	ErrResolverUnavailable      = "recommendation service unavailable"
	ErrProberUnavailable        = "upstream prober unavailable"
	ErrQueryRequired            = "--query required"
	ErrInvalidLimit             = "--limit must be >= 0"
)

// Success messages
const (
	MsgNoHistoryRecorded = "No history recorded yet."
	MsgNoMatches         = "No matching entries."
)
