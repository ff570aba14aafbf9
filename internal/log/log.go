// Package log records what the form widgets and modes do: focus moves,
// emitted values, config reloads. Entries are single key=value lines written
// to a file (--debug or FORMKIT_DEBUG) and published on a broker, so the
// playground's log pane can follow them live.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/formkit/internal/pubsub"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatConfig  Category = "config"  // Configuration loading/saving
	CatWatcher Category = "watcher" // Config file watcher events
	CatUI      Category = "ui"      // Widget focus and rendering
	CatForm    Category = "form"    // Value changes emitted by form widgets
	CatMode    Category = "mode"    // Prompt and playground lifecycle
	CatCache   Category = "cache"   // Cache fills and misses
)

// replaySize is how many recent entries a late listener receives.
const replaySize = 100

// Logger provides structured logging.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	writer   io.Writer
	enabled  bool
	minLevel Level
	broker   *pubsub.Broker[string] // Pub/sub for log events
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Init initializes the global logger.
// Returns a cleanup function to close the log file.
func Init(path string) (func(), error) {
	var initErr error
	once.Do(func() {
		defaultLogger, initErr = newLogger(path)
	})
	if initErr != nil {
		return nil, initErr
	}
	// Check if logger was initialized (handles case where once.Do already ran)
	if defaultLogger == nil {
		return nil, fmt.Errorf("logger initialization failed or already attempted")
	}
	return func() {
		if defaultLogger != nil && defaultLogger.file != nil {
			_ = defaultLogger.file.Close()
		}
	}, nil
}

// InitWithWriter installs a logger that writes to w. Unlike Init it may be
// called repeatedly; each call replaces the global logger.
func InitWithWriter(w io.Writer) {
	defaultLogger = &Logger{
		writer:   w,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[string](pubsub.WithReplay(replaySize)),
	}
}

// InitWithTeaLog uses tea.LogToFile for initialization.
func InitWithTeaLog(path string, prefix string) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, err
	}

	defaultLogger = &Logger{
		file:     f,
		writer:   f,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[string](pubsub.WithReplay(replaySize)),
	}

	return func() { _ = f.Close() }, nil
}

func newLogger(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G304: path is user-controlled debug log path
	if err != nil {
		return nil, err
	}

	return &Logger{
		file:     f,
		writer:   f,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[string](pubsub.WithReplay(replaySize)),
	}, nil
}

// Initialized reports whether one of the Init functions installed a logger.
func Initialized() bool { return defaultLogger != nil }

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.enabled = enabled
		defaultLogger.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.minLevel = level
		defaultLogger.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	log(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	log(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	log(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	log(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	log(LevelError, cat, msg, fields...)
}

func log(level Level, cat Category, msg string, fields ...any) {
	if defaultLogger == nil || !defaultLogger.enabled {
		return
	}
	if level < defaultLogger.minLevel {
		return
	}

	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	// Format: 2025-12-06T10:45:00 [DEBUG] [form] relative range changed id=relativerange-1a2b value="7 day"
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", time.Now().Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i < len(fields); i += 2 {
		if i+1 == len(fields) {
			fmt.Fprintf(&b, " %v=<missing>", fields[i])
			break
		}
		fmt.Fprintf(&b, " %v=%s", fields[i], formatValue(fields[i+1]))
	}
	b.WriteByte('\n')
	entry := b.String()

	// Write to file
	if defaultLogger.writer != nil {
		_, _ = defaultLogger.writer.Write([]byte(entry))
	}

	// Publish event to subscribers (non-blocking)
	if defaultLogger.broker != nil {
		defaultLogger.broker.Publish(pubsub.LoggedEvent, entry)
	}
}

// formatValue quotes values that would otherwise blur into the next field,
// such as "<empty> minute" or preset labels.
func formatValue(v any) string {
	s := fmt.Sprint(v)
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

// ParseLevel maps a level name such as "info" or "WARN" to its Level.
func ParseLevel(name string) (Level, error) {
	for _, l := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if strings.EqualFold(name, l.String()) {
			return l, nil
		}
	}
	return LevelDebug, fmt.Errorf("unknown log level %q", name)
}

// LogEvent is a pubsub event containing a log entry.
type LogEvent = pubsub.Event[string]

// LogListener wraps a continuous listener for log events.
type LogListener = pubsub.ContinuousListener[string]

// NewListener creates a new log event listener.
// The listener is automatically cleaned up when the context is cancelled.
func NewListener(ctx context.Context) *LogListener {
	if defaultLogger == nil || defaultLogger.broker == nil {
		return nil
	}
	return pubsub.NewContinuousListener(ctx, defaultLogger.broker)
}
