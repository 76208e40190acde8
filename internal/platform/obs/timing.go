package obs

import (
	"context"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID returns a copy of ctx carrying id for log correlation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Time logs the duration of the operation name once the returned func runs.
// Pass a pointer to the named error result so failures are logged with it.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	entry := FromContext(ctx).WithField("op", name)

	return func(errp *error) {
		entry = entry.WithField("dur_ms", time.Since(start).Milliseconds())

		if errp != nil && *errp != nil {
			entry.WithError(*errp).Warn("operation failed")
			return
		}
		entry.Debug("operation done")
	}
}
