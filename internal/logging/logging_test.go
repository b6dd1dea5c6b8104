package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget.log")
	logger, flush := New(Options{Path: path})

	logger.Info("hello")
	flush()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestNewVerboseLogsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget.log")
	logger, flush := New(Options{Path: path, Verbose: true})

	logger.Debug("fine detail")
	flush()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fine detail")
}

func TestNewQuietSkipsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget.log")
	logger, flush := New(Options{Path: path})

	logger.Debug("fine detail")
	logger.Info("coarse detail")
	flush()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "fine detail")
	assert.Contains(t, string(data), "coarse detail")
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Contains(t, path, filepath.Join(".local", "share", LogDir, LogFile))
}
