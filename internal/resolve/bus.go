package resolve

import (
	"context"

	"github.com/konstantinWDK/nautilus-vscode-widget/internal/winquery"
)

// busStrategy asks Nautilus over the session bus for the location of its
// frontmost window. Most trustworthy signal: it bypasses window-title
// parsing entirely. Gated on the focused window actually belonging to the
// file manager, so a location from a background window is never returned.
type busStrategy struct {
	fs FileSystem
}

func (s *busStrategy) Name() string { return "bus" }

func (s *busStrategy) Attempt(ctx context.Context, probe *ProbeCache) Attempt {
	focused, err := winquery.IsFileManagerFocused(ctx, probe)
	if err != nil {
		return Attempt{Err: err}
	}
	if !focused {
		return Attempt{Err: ErrNotFocused}
	}

	out, err := winquery.FileManagerLocation(ctx, probe)
	if err != nil {
		return Attempt{Err: err}
	}

	path, ok := winquery.ParseFileURI(out)
	if !ok {
		return Attempt{Err: ErrNoMatch}
	}
	if !isDir(s.fs, path) {
		return Attempt{Err: ErrInvalidPath}
	}

	return Attempt{Path: path, OK: true}
}
