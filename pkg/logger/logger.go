/* pkg/logger/logger.go */

package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the trace logger for one integration run.
//
// With Debug enabled every entry goes both to the console and to the
// integrations log file; with Debug disabled the logger is a no-op, which
// matches how the integration runner expects a quiet binary.
func New(cfg Config) *zap.Logger {
	if !cfg.Debug {
		return zap.NewNop()
	}

	console := cfg.Console
	if console == nil {
		console = os.Stdout
	}

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(DefaultConsoleEncoderConfig()),
		zapcore.AddSync(console),
		zapcore.DebugLevel,
	)
	fileCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(fileEncoderConfig()),
		&appendSyncer{path: LogFilePath(cfg.Root)},
		zapcore.DebugLevel,
	)

	return zap.New(zapcore.NewTee(consoleCore, fileCore))
}

// DefaultRoot resolves the install root from the executable location,
// two levels up: <root>/integrations/<binary> is the layout the Wazuh
// manager uses for custom integrations.
func DefaultRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe))
}

// LogFilePath returns the shared integrations log path beneath root.
func LogFilePath(root string) string {
	return filepath.Join(root, "logs", "integrations.log")
}
