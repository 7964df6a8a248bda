// Package logging routes subsystem-tagged log lines either to a slog text
// handler (CLI) or to a channel the TUI drains into its activity log.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel is the severity of an entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

var slogLevels = [...]slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

func (l LogLevel) valid() bool { return l >= LevelDebug && l <= LevelError }

func (l LogLevel) String() string {
	if !l.valid() {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// SlogLevel maps the level onto log/slog. Unknown levels map to info.
func (l LogLevel) SlogLevel() slog.Level {
	if !l.valid() {
		return slog.LevelInfo
	}
	return slogLevels[l]
}

// ParseLevel reads a level from a flag or config value. Anything it does
// not recognise is LevelInfo.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	}
	return LevelInfo
}

// LogEntry is one line of the TUI activity log.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Subsystem string
	Message   string
	Err       error
}

func (e LogEntry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", e.Timestamp.Format("15:04:05"), e.Level, e.Subsystem, e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// sink is where log calls currently go. entries is non-nil in TUI mode.
type sink struct {
	logger  *slog.Logger
	entries chan LogEntry
	min     LogLevel
}

const tuiChannelBufferSize = 2048

var (
	mu      sync.RWMutex
	current sink
)

func install(s sink) {
	slog.SetDefault(s.logger)
	current = s
}

func newTextLogger(w io.Writer, level LogLevel) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.SlogLevel()}))
}

// InitForTUI switches logging to TUI mode and returns the channel the
// program must drain. Entries are dropped while the channel is full.
func InitForTUI(filterLevel LogLevel) <-chan LogEntry {
	mu.Lock()
	defer mu.Unlock()
	ch := make(chan LogEntry, tuiChannelBufferSize)
	// stderr is hidden by the alt screen once the program runs.
	install(sink{logger: newTextLogger(os.Stderr, filterLevel), entries: ch, min: filterLevel})
	return ch
}

// InitForCLI sends log lines to output as slog text records.
func InitForCLI(filterLevel LogLevel, output io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	install(sink{logger: newTextLogger(output, filterLevel), min: filterLevel})
}

func emit(level LogLevel, subsystem string, err error, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	mu.RLock()
	defer mu.RUnlock()

	switch {
	case current.entries != nil:
		if level < current.min {
			return
		}
		select {
		case current.entries <- LogEntry{Timestamp: time.Now(), Level: level, Subsystem: subsystem, Message: msg, Err: err}:
		default:
		}
	case current.logger != nil:
		attrs := []slog.Attr{slog.String("subsystem", subsystem)}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		current.logger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
	default:
		fmt.Fprintf(os.Stderr, "[%s] [%s] %s (logging not initialized)\n", level, subsystem, msg)
	}
}

func Debug(subsystem string, format string, args ...interface{}) {
	emit(LevelDebug, subsystem, nil, format, args)
}

func Info(subsystem string, format string, args ...interface{}) {
	emit(LevelInfo, subsystem, nil, format, args)
}

func Warn(subsystem string, format string, args ...interface{}) {
	emit(LevelWarn, subsystem, nil, format, args)
}

// Error logs format with err attached.
func Error(subsystem string, err error, format string, args ...interface{}) {
	emit(LevelError, subsystem, err, format, args)
}

// CloseTUIChannel closes the TUI channel and leaves logging on stderr.
func CloseTUIChannel() {
	mu.Lock()
	defer mu.Unlock()
	if current.entries != nil {
		close(current.entries)
		current.entries = nil
	}
}
