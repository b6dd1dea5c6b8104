package resolve

import (
	"context"
	"path/filepath"
)

// cwdStrategy is the terminal fallback: the process working directory if it
// is somewhere useful, then the desktop or documents folder, then home. It
// never needs a probe and cannot fail unless the home directory itself is
// unknown.
type cwdStrategy struct {
	fs FileSystem
}

func (s *cwdStrategy) Name() string { return "cwd" }

func (s *cwdStrategy) Attempt(ctx context.Context, probe *ProbeCache) Attempt {
	home, err := s.fs.UserHomeDir()
	if err != nil {
		return Attempt{Err: err}
	}

	if wd, err := s.fs.Getwd(); err == nil && wd != "/" && isDir(s.fs, wd) {
		return Attempt{Path: wd, OK: true}
	}

	for _, name := range []string{"Desktop", "Escritorio", "Documents", "Documentos"} {
		path := filepath.Join(home, name)
		if isDir(s.fs, path) {
			return Attempt{Path: path, OK: true}
		}
	}

	if isDir(s.fs, home) {
		return Attempt{Path: home, OK: true}
	}
	return Attempt{Err: ErrInvalidPath}
}
