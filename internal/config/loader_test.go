package config

import (
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFileSystem implements FileSystem for testing.
type MockFileSystem struct {
	HomeDir     string
	HomeDirErr  error
	Files       map[string][]byte
	ReadFileErr error
	Written     map[string][]byte
	WriteErr    error
	MkdirErr    error
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, m.HomeDirErr
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (m *MockFileSystem) WriteFile(path string, data []byte, _ os.FileMode) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	if m.Written == nil {
		m.Written = map[string][]byte{}
	}
	m.Written[path] = data
	return nil
}

func (m *MockFileSystem) MkdirAll(string, os.FileMode) error {
	return m.MkdirErr
}

// --- HAPPY PATH TESTS ---

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	// Config file doesn't exist - should return all defaults
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "code", cfg.EditorCommand)
	assert.Equal(t, 2000, cfg.Detect.ProbeTimeoutMs)
	assert.Equal(t, 6000, cfg.Detect.TotalBudgetMs)
	assert.Empty(t, cfg.FavoriteFolders)
}

func TestLoad_FullOverride_AllValuesReplaced(t *testing.T) {
	configJSON := `{
		"editor_command": "codium",
		"position_x": 640,
		"position_y": 480,
		"button_color": "#007ACC",
		"autostart": true,
		"open_git_root": true,
		"favorite_folders": ["/home/user/src"],
		"favorite_colors": {"/home/user/src": "#1E1E23"},
		"detect": {"probe_timeout_ms": 500, "total_budget_ms": 4000}
	}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/nautilus-vscode-widget/config.json": []byte(configJSON),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "codium", cfg.EditorCommand)
	assert.Equal(t, 640, cfg.PositionX)
	assert.True(t, cfg.Autostart)
	assert.True(t, cfg.OpenGitRoot)
	assert.Equal(t, []string{"/home/user/src"}, cfg.FavoriteFolders)
	assert.Equal(t, "#1E1E23", cfg.FavoriteColors["/home/user/src"])
	assert.Equal(t, 500, cfg.Detect.ProbeTimeoutMs)
	assert.Equal(t, 4000, cfg.Detect.TotalBudgetMs)
}

func TestLoad_PartialOverride_MergesWithDefaults(t *testing.T) {
	// Config file only overrides editor_command - rest should be defaults
	configJSON := `{"editor_command": "/usr/bin/codium"}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/nautilus-vscode-widget/config.json": []byte(configJSON),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/codium", cfg.EditorCommand) // Overridden
	assert.Equal(t, "#2C2C2C", cfg.ButtonColor)           // Default
	assert.Equal(t, 2000, cfg.Detect.ProbeTimeoutMs)      // Default
	assert.True(t, cfg.AlwaysVisible)                     // Default
}

func TestLoad_UnknownKeys_Tolerated(t *testing.T) {
	// Older front-end versions write keys this build doesn't know about
	configJSON := `{"editor_command": "code", "legacy_fade_ms": 20}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/nautilus-vscode-widget/config.json": []byte(configJSON),
		},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, "code", cfg.EditorCommand)
}

func TestLoad_ExplicitZero_OverridesDefault(t *testing.T) {
	configJSON := `{"always_visible": false, "position_x": 0}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/nautilus-vscode-widget/config.json": []byte(configJSON),
		},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.False(t, cfg.AlwaysVisible)
	assert.Equal(t, 0, cfg.PositionX)
}

// --- ERROR PATH TESTS ---

func TestLoad_HomeDirError_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{HomeDirErr: errors.New("no home")}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_MalformedJSON_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/nautilus-vscode-widget/config.json": []byte(`{not json`),
		},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_PermissionError_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir:     "/home/user",
		ReadFileErr: os.ErrPermission,
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidValues_ReturnsValidationError(t *testing.T) {
	configJSON := `{"detect": {"probe_timeout_ms": 0}}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/nautilus-vscode-widget/config.json": []byte(configJSON),
		},
	}

	_, err := NewLoaderWithFS(fs).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "probe_timeout_ms")
}

// --- SAVE TESTS ---

func TestSave_WritesRoundTrippableJSON(t *testing.T) {
	fs := &MockFileSystem{HomeDir: "/home/user"}
	loader := NewLoaderWithFS(fs)

	cfg := DefaultConfig()
	cfg.EditorCommand = "codium"
	cfg.FavoriteFolders = []string{"/home/user/projects"}

	require.NoError(t, loader.Save(cfg))

	data := fs.Written["/home/user/.config/nautilus-vscode-widget/config.json"]
	require.NotNil(t, data)

	var round map[string]any
	require.NoError(t, json.Unmarshal(data, &round))
	assert.Equal(t, "codium", round["editor_command"])
}

func TestSave_InvalidConfig_Rejected(t *testing.T) {
	fs := &MockFileSystem{HomeDir: "/home/user"}
	cfg := DefaultConfig()
	cfg.EditorCommand = ""

	err := NewLoaderWithFS(fs).Save(cfg)

	require.Error(t, err)
	assert.Empty(t, fs.Written)
}
