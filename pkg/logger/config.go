/* pkg/logger/config.go */

package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls logger construction. Debug is threaded explicitly: there
// is no process-wide flag, the caller decides once at startup.
type Config struct {
	// Root is the integration install root. Trace lines are appended to
	// <Root>/logs/integrations.log.
	Root string

	// Debug enables trace output. When false the returned logger is a
	// no-op and only the unconditional invocation line reaches the file.
	Debug bool

	// Console overrides the console destination (stdout by default).
	// Tests use this to capture output.
	Console io.Writer
}

// DefaultConsoleEncoderConfig returns the encoder settings used for the
// console core.
func DefaultConsoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "T"
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.MessageKey = "M"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

// fileEncoderConfig is the console config without color so the trace file
// stays greppable.
func fileEncoderConfig() zapcore.EncoderConfig {
	cfg := DefaultConsoleEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}
