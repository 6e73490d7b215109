package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is the process-wide logger, replaced by Configure
var defaultLogger zerolog.Logger

// LogLevel represents the log level
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// Config represents logger configuration
type Config struct {
	// Level is the log level
	Level LogLevel
	// Pretty enables human-readable console output instead of JSON
	Pretty bool
	// Output is the output writer (defaults to os.Stdout)
	Output io.Writer
}

// FromSettings builds a Config from the level and format strings of the config file
func FromSettings(level, format string) Config {
	return Config{
		Level:  LogLevel(strings.ToLower(level)),
		Pretty: strings.ToLower(format) == "text",
	}
}

// Configure installs the global logger and returns it
func Configure(config Config) zerolog.Logger {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(string(config.Level))
	if err != nil || config.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var writer io.Writer = config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: time.RFC3339,
		}
	}

	defaultLogger = zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = defaultLogger
	return defaultLogger
}

// Component returns a child logger tagged with a component name
func Component(name string) zerolog.Logger {
	return defaultLogger.With().Str("component", name).Logger()
}

// Debug logs a debug message
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info logs an informational message
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn logs a warning message
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error logs an error message
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

func init() {
	Configure(Config{
		Level:  InfoLevel,
		Pretty: true,
		Output: os.Stdout,
	})
}
