package domain

import "time"

// LogEntry is one persisted request/response pair. ID and Timestamp are
// assigned by the store.
type LogEntry struct {
	ID        int64     `json:"id"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Timestamp time.Time `json:"timestamp"`
}
