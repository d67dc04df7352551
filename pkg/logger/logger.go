package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	EMPTY   = ""
	DEBUG   = "debug"
	INFO    = "info"
	WARN    = "warn"
	ERROR   = "error"
	JSON    = "json"
	CONSOLE = "console"
	SERVICE = "service"
)

// frames added by Logger on top of zerolog's own caller accounting
const wrapperFrames = 2

type Logger struct {
	zl zerolog.Logger
}

type Config struct {
	Level     string
	Format    string
	Output    io.Writer
	AddSource bool
	Service   string
}

func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Format == EMPTY {
		cfg.Format = JSON
	}
	if cfg.Level == EMPTY {
		cfg.Level = INFO
	}

	var level zerolog.Level
	switch cfg.Level {
	case DEBUG:
		level = zerolog.DebugLevel
	case INFO:
		level = zerolog.InfoLevel
	case WARN:
		level = zerolog.WarnLevel
	case ERROR:
		level = zerolog.ErrorLevel
	default:
		level = zerolog.InfoLevel
	}

	out := cfg.Output
	if cfg.Format != JSON {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}

	zctx := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.AddSource {
		zctx = zctx.CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + wrapperFrames)
	}
	if cfg.Service != EMPTY {
		zctx = zctx.Str(SERVICE, cfg.Service)
	}

	return &Logger{zl: zctx.Logger()}
}

// Nop returns a logger that discards everything. Handy in tests.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.write(l.zl.Debug(), msg, args)
}

func (l *Logger) Info(msg string, args ...any) {
	l.write(l.zl.Info(), msg, args)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.write(l.zl.Warn(), msg, args)
}

func (l *Logger) Error(msg string, args ...any) {
	l.write(l.zl.Error(), msg, args)
}

// Fatal logs a critical error and exits the application with status code 1
// Use this for unrecoverable errors that prevent the application from starting or continuing
func (l *Logger) Fatal(msg string, args ...any) {
	l.write(l.zl.Error(), msg, args)
	os.Exit(1)
}

// With returns a child logger carrying the given key/value pairs on every line.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{zl: l.zl.With().Fields(args).Logger()}
}

// args are alternating key/value pairs, the same shape slog takes.
// A trailing key without a value is dropped by zerolog.
func (l *Logger) write(e *zerolog.Event, msg string, args []any) {
	if e == nil {
		return
	}
	if len(args) > 0 {
		e = e.Fields(args)
	}
	e.Msg(msg)
}
