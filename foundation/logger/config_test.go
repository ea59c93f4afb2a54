//go:build unit
// +build unit

package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBuildConfigByEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		env              string
		wantLevel        zapcore.Level
		wantDisableStack bool
		wantCaller       bool
		wantCallerKey    string
	}{
		{name: "development", env: "development", wantLevel: zap.DebugLevel, wantDisableStack: true, wantCallerKey: zapcore.OmitKey},
		{name: "debug", env: " DEBUG ", wantLevel: zap.DebugLevel, wantCaller: true, wantCallerKey: "caller"},
		{name: "production", env: "production", wantLevel: zap.InfoLevel, wantDisableStack: true, wantCallerKey: zapcore.OmitKey},
		{name: "fallback", env: "unknown", wantLevel: zap.InfoLevel, wantDisableStack: true, wantCallerKey: zapcore.OmitKey},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, withCaller := buildConfig(tc.env)

			require.Equal(t, tc.wantLevel, cfg.Level.Level())
			require.Equal(t, tc.wantDisableStack, cfg.DisableStacktrace)
			require.Equal(t, tc.wantCaller, withCaller)
			require.Equal(t, tc.wantCallerKey, cfg.EncoderConfig.CallerKey)
			require.Equal(t, "timestamp", cfg.EncoderConfig.TimeKey)
			require.Equal(t, []string{"stderr"}, cfg.OutputPaths)
		})
	}
}

func TestIsIgnorableSyncError(t *testing.T) {
	t.Parallel()

	require.False(t, isIgnorableSyncError(nil))
	require.True(t, isIgnorableSyncError(errors.New("sync /dev/stderr: invalid argument")))
	require.True(t, isIgnorableSyncError(errors.New("sync /dev/stderr: inappropriate ioctl for device")))
	require.False(t, isIgnorableSyncError(errors.New("disk write failed")))
}

func TestAppendContextFields(t *testing.T) {
	t.Parallel()

	require.Equal(t, []any{"k", "v"}, appendContextFields(nil, "k", "v"))

	ctx := ContextWithRunID(nil, "run-1")
	ctx = ContextWithRecordIndex(ctx, 7)
	got := appendContextFields(ctx, "k", "v")
	require.Equal(t, []any{"k", "v", "run_id", "run-1", "record_index", "7"}, got)

	require.Empty(t, appendContextFields(context.Background()))
}
