// Package logging writes the desktop's JSON-line log: errors always, trace
// events only while tracing is on.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "termdesk.log"

type record struct {
	Time    time.Time   `json:"time"`
	Event   string      `json:"event"`
	Error   string      `json:"error,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

// sink owns the log file. It is opened on first write and kept open until
// the destination changes or Close is called.
type sink struct {
	mu    sync.Mutex
	path  string
	file  *os.File
	trace bool
}

var std = &sink{path: defaultLogFile}

func (s *sink) write(rec record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
			return
		}
		s.file = f
	}
	if err := json.NewEncoder(s.file).Encode(rec); err != nil {
		fmt.Fprintf(os.Stderr, "log encoding failed: %v\n", err)
	}
}

func (s *sink) closeLocked() {
	if s.file == nil {
		return
	}
	if err := s.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "closing log failed: %v\n", err)
	}
	s.file = nil
}

// Error records err as an "error" entry. Errors are written whether or not
// tracing is enabled.
func Error(err error) {
	if err == nil {
		return
	}
	std.write(record{Time: time.Now().UTC(), Event: "error", Error: err.Error()})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	std.mu.Lock()
	std.trace = enabled
	std.mu.Unlock()
}

// TraceEnabled reports whether trace entries are currently written.
func TraceEnabled() bool {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.trace
}

// Trace appends event with its payload when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	std.write(record{Time: time.Now().UTC(), Event: event, Payload: payload})
}

// Configure sets the log destination, closing any file already open. Empty
// values fall back to the default path. Missing directories are created.
func Configure(path string) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.closeLocked()
	if strings.TrimSpace(path) == "" {
		std.path = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		std.path = defaultLogFile
		return
	}
	std.path = path
}

// Path returns the active log destination.
func Path() string {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.path
}

// Close releases the log file. A later write reopens it.
func Close() {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.closeLocked()
}
