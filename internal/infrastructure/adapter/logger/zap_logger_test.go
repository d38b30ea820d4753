package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
)

func TestZapLoggerEmitsStructuredFields(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLoggerWithCore(obsCore)

	log.Info("alert_triggered", map[string]any{
		"code":    1100,
		"user_id": uint64(1),
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "alert_triggered", entry.Message)
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	fields := entry.ContextMap()
	assert.EqualValues(t, 1100, fields["code"])
	assert.EqualValues(t, 1, fields["user_id"])
}

func TestZapLoggerErrorField(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLoggerWithCore(obsCore)

	log.Error("event_rejected", map[string]any{"error": errors.New("boom")})

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "boom", logs.All()[0].ContextMap()["error"])
}

func TestZapLoggerLevelFiltering(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLoggerWithCore(obsCore)
	log.SetLevel(core.LogLevelWarn)

	log.Debug("dropped", nil)
	log.Info("dropped", nil)
	log.Warn("kept", nil)
	log.Error("kept", nil)

	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	assert.Equal(t, 2, logs.FilterMessage("kept").Len())
	assert.Equal(t, 0, logs.FilterMessage("dropped").Len())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, core.LogLevelWarn, ParseLevel("warning"))
	assert.Equal(t, core.LogLevelError, ParseLevel("error"))
	assert.Equal(t, core.LogLevelInfo, ParseLevel("whatever"))
}

func TestParseLevelRoundTrip(t *testing.T) {
	for _, level := range []core.LogLevel{core.LogLevelDebug, core.LogLevelInfo, core.LogLevelWarn, core.LogLevelError} {
		assert.Equal(t, level, ParseLevel(level.String()))
	}
	assert.Equal(t, "unknown", core.LogLevel(42).String())
}
