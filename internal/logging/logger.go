// Package logging wraps zerolog with a small key/value API.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Options configures the process logger. An empty File logs to the console.
type Options struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Init replaces the process logger.
func Init(opts Options) {
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if opts.File != "" {
		out = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
	}
	logger = zerolog.New(out).With().Timestamp().Logger()
	SetLogLevel(opts.Level)
}

// SetLogLevel falls back to info for unknown levels.
func SetLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	logger = logger.Level(lvl)
}

func SetLoggerForTest(l zerolog.Logger) {
	logger = l
}

func Debug(msg string, kv ...interface{}) { write(logger.Debug(), msg, kv) }
func Info(msg string, kv ...interface{})  { write(logger.Info(), msg, kv) }
func Warn(msg string, kv ...interface{})  { write(logger.Warn(), msg, kv) }
func Error(msg string, kv ...interface{}) { write(logger.Error(), msg, kv) }

// write attaches kv pairs to e. A trailing key without a value is dropped.
func write(e *zerolog.Event, msg string, kv []interface{}) {
	if e == nil {
		return
	}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		switch v := kv[i+1].(type) {
		case error:
			e = e.AnErr(key, v)
		case fmt.Stringer:
			e = e.Str(key, v.String())
		default:
			e = e.Interface(key, v)
		}
	}
	e.Msg(msg)
}
