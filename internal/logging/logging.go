// Package logging defines the fire-and-forget log sink consumed by the
// engine. The engine never blocks on or checks errors from the sink.
package logging

import "github.com/sirupsen/logrus"

// Level is the severity of a log entry.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Fields carries structured context for a log entry.
type Fields map[string]any

// Sink receives log entries from the engine.
type Sink interface {
	Log(msg string, level Level, fields Fields)
}

type logrusSink struct {
	logger *logrus.Logger
}

// New returns a logrus-backed Sink. Unknown level strings fall back to info.
func New(level string) Sink {
	logger := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &logrusSink{logger: logger}
}

func (s *logrusSink) Log(msg string, level Level, fields Fields) {
	entry := s.logger.WithFields(logrus.Fields(fields))
	switch level {
	case LevelDebug:
		entry.Debug(msg)
	case LevelWarn:
		entry.Warn(msg)
	case LevelError:
		entry.Error(msg)
	default:
		entry.Info(msg)
	}
}

type nopSink struct{}

func (nopSink) Log(string, Level, Fields) {}

// Nop returns a Sink that discards everything. Used in tests.
func Nop() Sink {
	return nopSink{}
}
