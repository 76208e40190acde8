package obs

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Configure sets the process-wide log level and, when w is non-nil, output.
func Configure(level string, w io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	logger.SetLevel(lvl)
	if w != nil {
		logger.SetOutput(w)
	}
	return nil
}

// Logger returns the process-wide logger.
func Logger() *logrus.Logger { return logger }

// FromContext returns a log entry annotated with the request id in ctx, if any.
func FromContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logger)
	if ctx == nil {
		return entry
	}
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok && reqID != "" {
		entry = entry.WithField("req_id", reqID)
	}
	return entry
}
