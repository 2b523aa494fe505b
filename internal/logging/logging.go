package logging

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Logger writes one JSON object per line with ts, level and msg fields,
// matching the request log format.
type Logger struct {
	mu  sync.Mutex
	enc *json.Encoder
	loc *time.Location
}

// New returns a logger writing to w with timestamps in loc (UTC when nil).
func New(w io.Writer, loc *time.Location) *Logger {
	if loc == nil {
		loc = time.UTC
	}
	return &Logger{enc: json.NewEncoder(w), loc: loc}
}

// Discard drops every entry. Useful in tests.
func Discard() *Logger {
	return New(io.Discard, time.UTC)
}

// Location is the timezone used for ts.
func (l *Logger) Location() *time.Location {
	return l.loc
}

func (l *Logger) Info(msg string, fields map[string]any) {
	l.write("info", msg, nil, fields)
}

func (l *Logger) Warn(msg string, err error, fields map[string]any) {
	l.write("warn", msg, err, fields)
}

func (l *Logger) Error(msg string, err error, fields map[string]any) {
	l.write("error", msg, err, fields)
}

func (l *Logger) write(level, msg string, err error, fields map[string]any) {
	entry := make(map[string]any, len(fields)+4)
	for k, v := range fields {
		entry[k] = v
	}
	entry["ts"] = time.Now().In(l.loc).Format(time.RFC3339Nano)
	entry["level"] = level
	entry["msg"] = msg
	if err != nil {
		entry["error"] = err.Error()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(entry)
}
