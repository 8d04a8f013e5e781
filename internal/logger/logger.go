package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Config controls the JSON logger.
type Config struct {
	Level    string
	Location *time.Location
	Output   io.Writer
}

// New returns a logrus logger that writes one JSON object per line.
// Keys follow the gateway log format: ts, level, msg plus caller fields.
// An unknown level falls back to info.
func New(cfg Config) *logrus.Logger {
	l := logrus.New()

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	l.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "ts",
		},
	})

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	l.AddHook(locationHook{loc: loc})

	return l
}

// Discard returns a logger that drops everything. Useful as a default in tests
// and for components constructed without a logger.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// locationHook renders entry timestamps in the configured location.
type locationHook struct {
	loc *time.Location
}

func (h locationHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h locationHook) Fire(e *logrus.Entry) error {
	e.Time = e.Time.In(h.loc)
	return nil
}
