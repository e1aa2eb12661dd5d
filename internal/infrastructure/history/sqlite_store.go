package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/movierec-go/internal/domain"
	"github.com/doeshing/movierec-go/internal/pkg/filesystem"
	"github.com/doeshing/movierec-go/internal/ports"
)

// sqliteTimestampFormat matches SQLite's CURRENT_TIMESTAMP.
const sqliteTimestampFormat = "2006-01-02 15:04:05"

// SQLiteStore persists request/response pairs in the recommendations table.
// Writes are serialized.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewSQLiteStore creates (or opens) the database at path and ensures the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = domain.DefaultDatabasePath
	}
	path = filesystem.ExpandPath(path)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	store := &SQLiteStore{db: db, path: path, now: time.Now}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS recommendations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_input TEXT NOT NULL,
		recommended_movies TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);`)
	return err
}

// Insert appends a record and returns it with its assigned id and timestamp.
func (s *SQLiteStore) Insert(ctx context.Context, input, output string) (domain.LogEntry, error) {
	ts := s.now().UTC().Truncate(time.Second)

	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO recommendations (user_input, recommended_movies, timestamp) VALUES (?, ?, ?)`,
		input, output, ts.Format(sqliteTimestampFormat),
	)
	if err != nil {
		return domain.LogEntry{}, &domain.PersistenceError{Op: "insert", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.LogEntry{}, &domain.PersistenceError{Op: "insert", Err: err}
	}
	return domain.LogEntry{ID: id, Input: input, Output: output, Timestamp: ts}, nil
}

// Records returns log entries, newest first (limit/search optional).
func (s *SQLiteStore) Records(ctx context.Context, limit int, search string) ([]domain.LogEntry, error) {
	builder := strings.Builder{}
	builder.WriteString("SELECT id, user_input, recommended_movies, timestamp FROM recommendations")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE user_input LIKE ? OR recommended_movies LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY id DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.LogEntry
	for rows.Next() {
		var rec domain.LogEntry
		var ts interface{}
		if err := rows.Scan(&rec.ID, &rec.Input, &rec.Output, &ts); err != nil {
			return nil, err
		}
		rec.Timestamp = parseTimestamp(ts)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Ping checks the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// parseTimestamp accepts the forms the driver may hand back for a DATETIME column.
func parseTimestamp(v interface{}) time.Time {
	switch ts := v.(type) {
	case time.Time:
		return ts
	case string:
		return parseTimestampString(ts)
	case []byte:
		return parseTimestampString(string(ts))
	default:
		return time.Time{}
	}
}

func parseTimestampString(s string) time.Time {
	for _, layout := range []string{sqliteTimestampFormat, time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

var (
	_ ports.RequestLog    = (*SQLiteStore)(nil)
	_ ports.HistoryReader = (*SQLiteStore)(nil)
)
