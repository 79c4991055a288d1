// Package logger provides structured logging using zerolog.
// It supports JSON and console output formats with configurable log levels.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultServiceName is attached to every entry unless configured otherwise.
const DefaultServiceName = "flight-value"

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error, fatal, panic)
	Level string

	// Format is the output format (json, console)
	Format string

	// EnableCaller adds caller information to log entries
	EnableCaller bool

	// ServiceName is the name of the service for log context
	ServiceName string
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		ServiceName: DefaultServiceName,
	}
}

// Logger wraps zerolog.Logger with the fields this service attaches.
type Logger struct {
	zerolog.Logger
}

// New creates a new Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a new Logger with custom output writer.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	service := cfg.ServiceName
	if service == "" {
		service = DefaultServiceName
	}

	ctx := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", service)

	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}

	return &Logger{Logger: ctx.Logger()}
}

// WithContext returns a new logger with an additional string field.
func (l *Logger) WithContext(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// WithRequestID returns a logger with request ID context.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithContext("request_id", requestID)
}

// WithProvider returns a logger with upstream provider context.
func (l *Logger) WithProvider(provider string) *Logger {
	return l.WithContext("provider", provider)
}

// WithQuery returns a logger tagged with the searched route and date.
func (l *Logger) WithQuery(origin, destination, date string) *Logger {
	return &Logger{Logger: l.With().
		Str("origin", origin).
		Str("destination", destination).
		Str("departure_date", date).
		Logger()}
}

// Nop returns a disabled logger that produces no output.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

var (
	globalMu sync.RWMutex
	global   *Logger
)

// Init initializes the global logger with the given configuration.
func Init(cfg Config) {
	SetGlobal(New(cfg))
}

// SetGlobal replaces the global logger.
func SetGlobal(l *Logger) {
	globalMu.Lock()
	global = l
	globalMu.Unlock()
}

// L returns the global logger, initializing it with DefaultConfig on first use.
func L() *Logger {
	globalMu.RLock()
	l := global
	globalMu.RUnlock()
	if l != nil {
		return l
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = New(DefaultConfig())
	}
	return global
}
