package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Setup(level, &buf)
	t.Cleanup(func() { Setup("info", os.Stdout) })
	return &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestWithContext(t *testing.T) {
	t.Run("prefers username and adds request id", func(t *testing.T) {
		buf := capture(t, "info")
		ctx := context.WithValue(context.Background(), "username", "jdoe")
		ctx = context.WithValue(ctx, RequestIDKey, "req-1")

		WithContext(ctx).Info("hello")

		entry := lastEntry(t, buf)
		assert.Equal(t, "jdoe", entry["user"])
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("unknown user", func(t *testing.T) {
		buf := capture(t, "info")
		WithContext(context.Background()).WithError(errors.New("boom")).Error("failed")

		entry := lastEntry(t, buf)
		assert.Equal(t, "unknown", entry["user"])
		assert.Equal(t, "boom", entry["error"])
	})
}

func TestSetupLevel(t *testing.T) {
	buf := capture(t, "warn")
	New().Info("hidden")
	assert.Empty(t, buf.String())

	New().WithFields(map[string]interface{}{"company": "acme"}).Warn("shown")
	assert.Equal(t, "acme", lastEntry(t, buf)["company"])

	capture(t, "nonsense")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
