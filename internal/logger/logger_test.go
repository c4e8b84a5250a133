package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func restoreLog(t *testing.T) {
	saved := Log
	t.Cleanup(func() { Log = saved })
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		level    string
		enabled  []zapcore.Level
		disabled []zapcore.Level
	}{
		{level: "debug", enabled: []zapcore.Level{zapcore.DebugLevel, zapcore.ErrorLevel}},
		{level: "info", enabled: []zapcore.Level{zapcore.InfoLevel}, disabled: []zapcore.Level{zapcore.DebugLevel}},
		{level: "WARN", enabled: []zapcore.Level{zapcore.WarnLevel}, disabled: []zapcore.Level{zapcore.InfoLevel}},
		{level: "error", enabled: []zapcore.Level{zapcore.ErrorLevel}, disabled: []zapcore.Level{zapcore.WarnLevel}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			restoreLog(t)
			require.NoError(t, Initialize(tt.level))

			core := Log.Desugar().Core()
			for _, l := range tt.enabled {
				assert.True(t, core.Enabled(l), "%s should be enabled", l)
			}
			for _, l := range tt.disabled {
				assert.False(t, core.Enabled(l), "%s should be disabled", l)
			}
			assert.NotPanics(t, Sync)
		})
	}
}

func TestInitialize_BadLevelKeepsLogger(t *testing.T) {
	restoreLog(t)
	before := Log

	assert.Error(t, Initialize("loud"))
	assert.Same(t, before, Log)
}

func TestLog_DefaultIsNop(t *testing.T) {
	restoreLog(t)
	assert.False(t, Log.Desugar().Core().Enabled(zapcore.FatalLevel))
}
