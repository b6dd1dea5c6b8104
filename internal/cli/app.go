// Package cli wires the widget's services into the command-line interface:
// directory detection, editor launch, favorites, autostart, and environment
// diagnostics.
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/konstantinWDK/nautilus-vscode-widget/internal/autostart"
	"github.com/konstantinWDK/nautilus-vscode-widget/internal/config"
	"github.com/konstantinWDK/nautilus-vscode-widget/internal/envinfo"
	"github.com/konstantinWDK/nautilus-vscode-widget/internal/executil"
	"github.com/konstantinWDK/nautilus-vscode-widget/internal/favorites"
	"github.com/konstantinWDK/nautilus-vscode-widget/internal/launch"
	"github.com/konstantinWDK/nautilus-vscode-widget/internal/resolve"
)

// ConfigStore loads and persists the widget configuration.
type ConfigStore interface {
	Path() (string, error)
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
}

// App carries the dependencies every command shares. Fields are interfaces
// so tests can swap in fakes.
type App struct {
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *zap.Logger
	Store     ConfigStore
	Env       envinfo.Environment
	Favorites *favorites.Service
	Autostart *autostart.Manager

	newResolver func(cfg *config.Config) directoryResolver
	newLauncher func(cfg *config.Config) editorLauncher
}

type directoryResolver interface {
	ResolveWithAttempts(ctx context.Context) (resolve.Resolved, []resolve.Attempt, error)
}

type editorLauncher interface {
	Open(dir string) (*launch.Launched, error)
}

// NewApp wires the real implementations.
func NewApp(logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	store := config.NewLoader()
	return &App{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Logger:    logger,
		Store:     store,
		Env:       envinfo.OSEnvironment{},
		Favorites: favorites.NewService(store, favorites.OSFileSystem{}),
		Autostart: autostart.NewManager(autostart.OSFileSystem{}),
		newResolver: func(cfg *config.Config) directoryResolver {
			runner := executil.NewOSCommandRunner(cfg.Detect.MaxCommandOutputSize, 2*time.Second)
			return resolve.New(cfg, runner, resolve.OSFileSystem{}, logger)
		},
		newLauncher: func(cfg *config.Config) editorLauncher {
			return launch.New(cfg, launch.OSFileSystem{}, launch.OSProcessStarter{}, logger)
		},
	}
}

// loadConfig returns the stored configuration, degrading to defaults when
// the preference file is unreadable.
func (a *App) loadConfig() *config.Config {
	cfg, err := a.Store.Load()
	if err != nil {
		a.Logger.Warn("config unreadable, using defaults", zap.Error(err))
		return config.DefaultConfig()
	}
	return cfg
}
