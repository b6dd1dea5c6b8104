package config

// Config holds all widget configuration values.
// Defaults are set in DefaultConfig() and can be overridden via the
// preference file at ~/.config/nautilus-vscode-widget/config.json.
// The file is shared with the GTK front-end, so its key names and layout
// must stay stable. Missing keys are left at their default values.
type Config struct {
	// Editor
	EditorCommand string `json:"editor_command"` // Default: "code"

	// Widget placement. Not used by the CLI, but round-tripped so the
	// front-end's saved position survives a config rewrite.
	PositionX int `json:"position_x"`
	PositionY int `json:"position_y"`

	ButtonColor   string `json:"button_color"` // Default: "#2C2C2C"
	ShowLabel     bool   `json:"show_label"`
	Autostart     bool   `json:"autostart"`
	AlwaysVisible bool   `json:"always_visible"`

	// Favorites
	FavoriteFolders []string          `json:"favorite_folders"`
	FavoriteColors  map[string]string `json:"favorite_colors"`

	// DefaultDirectory is opened when detection fails entirely.
	// Empty means the user's home directory.
	DefaultDirectory string `json:"default_directory"`

	// OpenGitRoot promotes a resolved directory to its enclosing git
	// worktree root before launching the editor.
	OpenGitRoot bool `json:"open_git_root"`

	Detect DetectConfig `json:"detect"`
}

// DetectConfig bounds the directory-detection chain.
type DetectConfig struct {
	// ProbeTimeoutMs caps each external tool invocation (xdotool, xprop, gdbus).
	ProbeTimeoutMs int `json:"probe_timeout_ms"` // Default: 2000

	// TotalBudgetMs caps one full run of the fallback chain.
	TotalBudgetMs int `json:"total_budget_ms"` // Default: 6000

	// SearchTimeoutMs caps the name-based folder search.
	SearchTimeoutMs int `json:"search_timeout_ms"` // Default: 2000

	// SearchMaxDepth limits how deep the name search descends below a root.
	SearchMaxDepth int `json:"search_max_depth"` // Default: 2

	// MaxCommandOutputSize caps captured subprocess output in bytes.
	MaxCommandOutputSize int64 `json:"max_command_output_size"` // Default: 1MB

	// Probe result cache, scoped to a single resolution call.
	CacheMaxEntries int `json:"cache_max_entries"` // Default: 32
	CacheTTLMs      int `json:"cache_ttl_ms"`      // Default: 3000
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		EditorCommand:   "code",
		PositionX:       100,
		PositionY:       100,
		ButtonColor:     "#2C2C2C",
		ShowLabel:       false,
		Autostart:       false,
		AlwaysVisible:   true,
		FavoriteFolders: []string{},
		FavoriteColors:  map[string]string{},
		Detect: DetectConfig{
			ProbeTimeoutMs:       2000,
			TotalBudgetMs:        6000,
			SearchTimeoutMs:      2000,
			SearchMaxDepth:       2,
			MaxCommandOutputSize: 1024 * 1024,
			CacheMaxEntries:      32,
			CacheTTLMs:           3000,
		},
	}
}
