// Package logger is the zerolog setup shared by the route finder server and CLI.
//
// Every component logs through a *Logger tagged with its component name.
// Request and session scoped loggers add request_id and session_id, so one
// search can be followed from the HTTP request to the lookup call.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Field names used across components.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldSessionID = "session_id"
	FieldFromCity  = "from_city"
	FieldToCity    = "to_city"
	FieldRankBy    = "rank_by"
)

// Component names passed to WithComponent.
const (
	ComponentSearch   = "search"
	ComponentLookup   = "lookup"
	ComponentSessions = "sessions"
	ComponentHTTP     = "http"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// DefaultServiceName tags every entry unless Config says otherwise.
const DefaultServiceName = "route-finder"

// Config holds the logger options. The config package fills it from LOG_LEVEL and LOG_FORMAT.
type Config struct {
	// Level is debug, info, warn or error; anything else means info
	Level string

	// Format is FormatJSON or FormatConsole
	Format string

	// EnableCaller adds file:line to every entry
	EnableCaller bool

	// ServiceName is added as the "service" field when set
	ServiceName string

	// NoColor disables ANSI colors in console output
	NoColor bool
}

// DefaultConfig returns JSON output at info level.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      FormatJSON,
		ServiceName: DefaultServiceName,
	}
}

// Logger wraps zerolog.Logger with the route finder's context helpers.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a Logger writing to output.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	var w io.Writer = output
	if cfg.Format == FormatConsole {
		w = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.TimeOnly,
			NoColor:    cfg.NoColor,
		}
	}

	zctx := zerolog.New(w).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp()

	if cfg.ServiceName != "" {
		zctx = zctx.Str("service", cfg.ServiceName)
	}
	if cfg.EnableCaller {
		zctx = zctx.Caller()
	}

	return &Logger{Logger: zctx.Logger()}
}

// parseLevel maps a configured level to zerolog. Empty and unknown values mean info.
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithField returns a child logger carrying key=value on every entry.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// WithRequestID returns the logger of one HTTP request.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithField(FieldRequestID, requestID)
}

// WithSession returns the logger of one search session.
func (l *Logger) WithSession(sessionID string) *Logger {
	return l.WithField(FieldSessionID, sessionID)
}

// WithComponent returns a logger tagged with the emitting component.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField(FieldComponent, component)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Global is the process logger used by code without an injected one, such as signal handling in main.
var Global *Logger

// SetGlobal replaces the global logger.
func SetGlobal(l *Logger) {
	Global = l
}

func global() *Logger {
	if Global == nil {
		Global = New(DefaultConfig())
	}
	return Global
}

// Info starts an info entry on the global logger.
func Info() *zerolog.Event {
	return global().Info()
}

// Error starts an error entry on the global logger.
func Error() *zerolog.Event {
	return global().Error()
}

// Fatal starts a fatal entry on the global logger; Msg exits the process.
func Fatal() *zerolog.Event {
	return global().Fatal()
}
