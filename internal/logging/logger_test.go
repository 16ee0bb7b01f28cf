package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"shopkeeper/internal/diagnostic"
)

func TestNew(t *testing.T) {
	logger, err := New(Options{})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = New(Options{Verbose: true, JSON: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestEmit(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	var diags diagnostic.Diagnostics

	scope := diags.At("armory", "shops.armory")
	scope.Infof("empty_shop", "shop has no valid trades")
	scope.Field("colour").Warnf("unknown_key", "unknown shop key %q", "colour")
	diags.Add(diagnostic.Diagnostic{
		Severity:    diagnostic.SeverityError,
		Code:        "merge_cycle",
		Message:     "merge refers back to itself",
		Suggestions: []string{"check permissions"},
	})

	Emit(logger, &diags)

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "shop has no valid trades", entries[0].Message)
	assert.Equal(t, "armory", entries[0].ContextMap()["shop"])
	assert.Equal(t, "shops.armory", entries[0].ContextMap()["path"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "unknown_key", entries[1].ContextMap()["code"])

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.NotContains(t, entries[2].ContextMap(), "shop")
	assert.Contains(t, entries[2].ContextMap(), "suggestions")
}

func TestEmitNil(t *testing.T) {
	assert.NotPanics(t, func() {
		Emit(nil, &diagnostic.Diagnostics{})
		Emit(zap.NewNop(), nil)
	})
}
