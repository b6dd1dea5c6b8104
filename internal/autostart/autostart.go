// Package autostart manages the desktop session autostart entry at
// ~/.config/autostart/nautilus-vscode-widget.desktop.
package autostart

import (
	"fmt"
	"os"
	"path/filepath"
)

// DesktopFile is the autostart entry file name.
const DesktopFile = "nautilus-vscode-widget.desktop"

// FileSystem abstracts the filesystem operations the manager needs.
type FileSystem interface {
	UserHomeDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(path string, data []byte, perm os.FileMode) error
	Remove(path string) error
	Stat(path string) (os.FileInfo, error)
	Executable() (string, error)
}

// OSFileSystem implements FileSystem using the real OS.
type OSFileSystem struct{}

func (OSFileSystem) UserHomeDir() (string, error)           { return os.UserHomeDir() }
func (OSFileSystem) MkdirAll(p string, m os.FileMode) error { return os.MkdirAll(p, m) }
func (OSFileSystem) WriteFile(p string, d []byte, m os.FileMode) error {
	return os.WriteFile(p, d, m)
}
func (OSFileSystem) Remove(p string) error              { return os.Remove(p) }
func (OSFileSystem) Stat(p string) (os.FileInfo, error) { return os.Stat(p) }
func (OSFileSystem) Executable() (string, error)        { return os.Executable() }

// Manager creates and removes the autostart entry.
type Manager struct {
	fs FileSystem
}

// NewManager creates a Manager with the given filesystem.
func NewManager(fs FileSystem) *Manager {
	if fs == nil {
		panic("fs is required")
	}
	return &Manager{fs: fs}
}

// Path returns the autostart entry location.
func (m *Manager) Path() (string, error) {
	home, err := m.fs.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "autostart", DesktopFile), nil
}

// Enabled reports whether the autostart entry exists.
func (m *Manager) Enabled() (bool, error) {
	path, err := m.Path()
	if err != nil {
		return false, err
	}
	if _, err := m.fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Enable writes the autostart entry pointing at the current executable.
func (m *Manager) Enable() (string, error) {
	path, err := m.Path()
	if err != nil {
		return "", err
	}
	exe, err := m.fs.Executable()
	if err != nil {
		return "", err
	}

	if err := m.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := m.fs.WriteFile(path, []byte(desktopEntry(exe)), 0o755); err != nil {
		return "", err
	}
	return path, nil
}

// Disable removes the autostart entry. Removing an absent entry is not an
// error.
func (m *Manager) Disable() error {
	path, err := m.Path()
	if err != nil {
		return err
	}
	if err := m.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func desktopEntry(exec string) string {
	return fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=Nautilus VSCode Widget
Comment=Floating button to open folders in VSCode from Nautilus
Exec=%q
Icon=com.visualstudio.code
Terminal=false
Hidden=false
X-GNOME-Autostart-enabled=true
Categories=Utility;Development;
StartupNotify=false
`, exec)
}
