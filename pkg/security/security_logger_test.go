package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*SecurityLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewSecurityLogger(zap.New(core), "talent-sift", "test"), logs
}

func TestLogRateLimitTriggered(t *testing.T) {
	sl, logs := newObservedLogger()

	sl.LogRateLimitTriggered("203.0.113.7", "curl/8.0", "req-1", "/v1/workflows/job-descriptions", "rl:submit:203.0.113.7")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, string(EventRateLimitTriggered), entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "talent-sift", fields["service"])
	assert.Equal(t, "test", fields["env"])
	assert.Equal(t, "203.0.113.7", fields["ip"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Contains(t, fields["details"], "/v1/workflows/job-descriptions")
}

func TestLogCSRFViolationIsError(t *testing.T) {
	sl, logs := newObservedLogger()

	sl.LogCSRFViolation("203.0.113.7", "", "", "/", "missing")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	_, hasUA := entry.ContextMap()["user_agent"]
	assert.False(t, hasUA)
}

func TestLogSessionStartedHashesID(t *testing.T) {
	sl, logs := newObservedLogger()
	sessionID := "7c2f9a7e-4c1b-4f59-9d1e-3f0a5b9c2d11"

	sl.LogSessionStarted(sessionID, "203.0.113.7", "req-2")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, HashValue(sessionID), fields["subject_value"])
	assert.NotContains(t, fields["subject_value"], sessionID)
	assert.Len(t, HashValue(sessionID), 16)
}
