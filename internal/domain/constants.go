package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Generative service defaults
const (
	// DefaultGenerativeEndpoint is the OpenAI chat completions URL
	DefaultGenerativeEndpoint = "https://api.openai.com/v1/chat/completions"
	// DefaultGenerativeModel is the chat model used for recommendations
	DefaultGenerativeModel = "gpt-3.5-turbo"
	// DefaultAuthEnvVar holds the generative service credential
	DefaultAuthEnvVar = "OPENAI_API_KEY"
	// DefaultTemperature is the sampling temperature sent upstream
	DefaultTemperature = 0.7
	// DefaultGenerativeTimeout bounds a single generative call
	DefaultGenerativeTimeout = 15 * time.Second
	// DefaultRecommendationSize is the number of titles in every answer
	DefaultRecommendationSize = 5
)

// Server defaults
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 5000
	DefaultShutdownTimeout = 10 * time.Second
)

// Storage defaults
const (
	// DefaultDatabasePath is relative to the working directory.
	DefaultDatabasePath = "movies.db"
	// DefaultRecorderQueueSize bounds pending log writes
	DefaultRecorderQueueSize = 64
)

// History constants
const (
	// DefaultHistoryLimit is the default number of log entries to display
	DefaultHistoryLimit = 20
	// DefaultHistorySearchLimit is the default number of search results to return
	DefaultHistorySearchLimit = 50
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
