// Package logging builds the widget's zap logger. Logs go to a rotating
// file under ~/.local/share/nautilus-vscode-widget/ so background launches
// leave a trace, with an optional console echo for interactive runs.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// LogDir is the directory under the user data dir holding log files.
	LogDir = "nautilus-vscode-widget"

	// LogFile is the widget log file name.
	LogFile = "widget.log"
)

// Options controls logger construction.
type Options struct {
	// Verbose lowers the level to debug and echoes log lines to stderr.
	Verbose bool

	// Path overrides the log file location. Empty means the default under
	// ~/.local/share.
	Path string
}

// DefaultPath returns the default log file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", LogDir, LogFile), nil
}

// New builds the logger. The returned function flushes buffered entries and
// should be deferred by the caller. Construction never fails outright: when
// the log file location cannot be determined the logger degrades to
// stderr only.
func New(opts Options) (*zap.Logger, func()) {
	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	var cores []zapcore.Core

	path := opts.Path
	if path == "" {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		rotated := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    1, // megabytes
			MaxBackups: 3,
		}
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(rotated), level))
	}

	if opts.Verbose || path == "" {
		consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stderr), level))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	return logger, func() { _ = logger.Sync() }
}
