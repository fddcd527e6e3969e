package logger

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level core.LogLevel) (*ZapLogger, *observer.ObservedLogs) {
	atomic := zap.NewAtomicLevelAt(toZapLevel(level))
	zcore, logs := observer.New(atomic)
	return newZapLoggerFromCore(zcore, atomic), logs
}

func TestZapLoggerLevels(t *testing.T) {
	log, logs := observed(core.LogLevelInfo)

	log.Debug("hidden", nil)
	log.Info("shown", map[string]any{"raffle_id": 7})
	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, int64(7), logs.All()[0].ContextMap()["raffle_id"])

	log.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, log.GetLevel())
	log.Warn("dropped", nil)
	log.Error("kept", map[string]any{"error": errors.New("boom")})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "kept", entries[1].Message)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestZapLoggerWith(t *testing.T) {
	log, logs := observed(core.LogLevelDebug)

	child := log.With(map[string]any{"request_id": "req-1"})
	child.Info("tagged", map[string]any{"n": 1})
	log.Info("untagged", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")

	log.SetLevel(core.LogLevelWarn)
	child.Info("silenced", nil)
	assert.Equal(t, 2, logs.Len())
}

func TestNewZapLoggerWithFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log := NewZapLoggerWithOptions(Options{Production: true, Level: "debug", Format: "json", Output: path, MaxSizeMB: 1})

	log.Info("written", nil)
	assert.NoError(t, log.Flush())
	assert.FileExists(t, path)
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", RequestIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
