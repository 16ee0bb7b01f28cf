// Package logging builds the zap logger used by the shopkeeper binary and
// forwards compile diagnostics to it.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shopkeeper/internal/diagnostic"
)

// Options control logger construction.
type Options struct {
	// Verbose lowers the level to debug.
	Verbose bool
	// JSON selects the JSON encoder; the console encoder is used otherwise.
	JSON bool
}

// New builds a production zap logger writing to stderr.
func New(opts Options) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.DisableStacktrace = true

	if !opts.JSON {
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	if opts.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

// Emit logs every diagnostic at the level matching its severity.
func Emit(logger *zap.Logger, diags *diagnostic.Diagnostics) {
	if logger == nil || diags == nil {
		return
	}

	for _, d := range diags.Entries {
		logger.Log(Level(d.Severity), d.Message, Fields(d)...)
	}
}

// Level maps a diagnostic severity to a zap level.
func Level(s diagnostic.Severity) zapcore.Level {
	switch s {
	case diagnostic.SeverityError:
		return zapcore.ErrorLevel
	case diagnostic.SeverityWarning:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

// Fields returns the structured context of a diagnostic.
func Fields(d diagnostic.Diagnostic) []zap.Field {
	fields := []zap.Field{zap.String("code", d.Code)}

	if d.Shop != "" {
		fields = append(fields, zap.String("shop", d.Shop))
	}

	if d.Path != "" {
		fields = append(fields, zap.String("path", d.Path))
	}

	if len(d.Suggestions) > 0 {
		fields = append(fields, zap.Strings("suggestions", d.Suggestions))
	}

	return fields
}
