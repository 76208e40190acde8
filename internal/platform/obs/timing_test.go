package obs

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeLogsFailureWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Configure("debug", &buf))
	t.Cleanup(func() { _ = Configure("info", nil) })

	ctx := WithRequestID(context.Background(), "abc123")
	err := errors.New("boom")
	Time(ctx, "geocode.remote")(&err)

	out := buf.String()
	assert.Contains(t, out, "req_id=abc123")
	assert.Contains(t, out, "op=geocode.remote")
	assert.Contains(t, out, "error=boom")
}

func TestTimeLogsSuccessAtDebug(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Configure("debug", &buf))
	t.Cleanup(func() { _ = Configure("info", nil) })

	var err error
	Time(context.Background(), "cache.get")(&err)

	assert.Contains(t, buf.String(), "operation done")
	assert.NotContains(t, buf.String(), "req_id=")
}

func TestConfigureRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Configure("loud", nil))
}
