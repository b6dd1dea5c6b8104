// Package launch validates and spawns the editor process. Both the editor
// command and the target directory pass hardening checks before anything is
// executed, and the process is fully detached so the widget never owns a
// terminal or blocks on the editor.
package launch

import (
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/konstantinWDK/nautilus-vscode-widget/internal/config"
)

// FileSystem abstracts the filesystem lookups validation needs.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.DirEntry, error)
	Realpath(path string) (string, error)
	LookPath(cmd string) (string, error)
	UserHomeDir() (string, error)
}

// OSFileSystem implements FileSystem using the real OS.
type OSFileSystem struct{}

func (OSFileSystem) Stat(path string) (os.FileInfo, error)      { return os.Stat(path) }
func (OSFileSystem) ReadDir(path string) ([]os.DirEntry, error) { return os.ReadDir(path) }
func (OSFileSystem) Realpath(path string) (string, error)       { return filepath.EvalSymlinks(path) }
func (OSFileSystem) LookPath(cmd string) (string, error)        { return exec.LookPath(cmd) }
func (OSFileSystem) UserHomeDir() (string, error)               { return os.UserHomeDir() }

// ProcessStarter spawns a detached process.
type ProcessStarter interface {
	Start(argv []string) (pid int, err error)
}

// OSProcessStarter starts processes in their own session with all standard
// streams on /dev/null, the same shape a desktop launcher uses.
type OSProcessStarter struct{}

func (OSProcessStarter) Start(argv []string) (int, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	// Reap in the background so the child never lingers as a zombie.
	go func() { _ = cmd.Wait() }()
	return pid, nil
}

// commonEditors are tried in order when the configured editor is unusable.
// Paths cover the usual VSCode install locations (distro package, snap,
// flatpak, manual install).
var commonEditors = []string{
	"code",
	"code-insiders",
	"codium",
	"vscodium",
	"/usr/bin/code",
	"/usr/local/bin/code",
	"/snap/bin/code",
	"/var/lib/flatpak/app/com.visualstudio.code/current/active/export/bin/com.visualstudio.code",
	"/opt/visual-studio-code/bin/code",
}

// Launched describes a successfully started editor process.
type Launched struct {
	Command      string
	Dir          string
	PID          int
	UsedFallback bool
}

// Launcher opens directories in the configured editor.
type Launcher struct {
	fs      FileSystem
	starter ProcessStarter
	cfg     *config.Config
	logger  *zap.Logger
}

// New creates a Launcher with injected dependencies.
func New(cfg *config.Config, fs FileSystem, starter ProcessStarter, logger *zap.Logger) *Launcher {
	if cfg == nil {
		panic("cfg is required")
	}
	if fs == nil {
		panic("fs is required")
	}
	if starter == nil {
		panic("starter is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Launcher{fs: fs, starter: starter, cfg: cfg, logger: logger}
}

// Open validates dir and starts the configured editor on it, falling back
// to common editor installations when the configured command is rejected or
// missing. The returned Launched reports whether a fallback was used so the
// caller can persist the working command.
func (l *Launcher) Open(dir string) (*Launched, error) {
	validDir, err := ValidateDirectory(l.fs, dir)
	if err != nil {
		return nil, err
	}

	if cmd, err := ValidateEditorCommand(l.fs, l.cfg.EditorCommand); err == nil {
		launched, startErr := l.start(cmd, validDir, false)
		if startErr == nil {
			return launched, nil
		}
		l.logger.Warn("configured editor failed to start",
			zap.String("command", cmd),
			zap.Error(startErr))
	} else {
		l.logger.Warn("configured editor rejected",
			zap.String("command", l.cfg.EditorCommand),
			zap.Error(err))
	}

	for _, candidate := range commonEditors {
		cmd, err := ValidateEditorCommand(l.fs, candidate)
		if err != nil {
			continue
		}
		launched, startErr := l.start(cmd, validDir, true)
		if startErr == nil {
			return launched, nil
		}
	}

	// ~/.local/bin/code is resolved last because it depends on home.
	if home, err := l.fs.UserHomeDir(); err == nil {
		if cmd, err := ValidateEditorCommand(l.fs, filepath.Join(home, ".local", "bin", "code")); err == nil {
			if launched, startErr := l.start(cmd, validDir, true); startErr == nil {
				return launched, nil
			}
		}
	}

	return nil, &EditorNotFoundError{Command: l.cfg.EditorCommand}
}

func (l *Launcher) start(cmd, dir string, fallback bool) (*Launched, error) {
	pid, err := l.starter.Start([]string{cmd, dir})
	if err != nil {
		return nil, &StartError{Command: cmd, Cause: err}
	}
	l.logger.Info("editor started",
		zap.String("command", cmd),
		zap.String("dir", dir),
		zap.Int("pid", pid))
	return &Launched{Command: cmd, Dir: dir, PID: pid, UsedFallback: fallback}, nil
}
