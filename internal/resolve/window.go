package resolve

import (
	"context"
	"strings"

	"github.com/konstantinWDK/nautilus-vscode-widget/internal/winquery"
)

// windowStrategy inspects the focused window directly: verifies its class
// belongs to the file manager, then extracts an absolute path from the
// window title or from its WM_NAME/_NET_WM_NAME properties.
type windowStrategy struct {
	fs FileSystem
}

func (s *windowStrategy) Name() string { return "window" }

func (s *windowStrategy) Attempt(ctx context.Context, probe *ProbeCache) Attempt {
	id, err := winquery.ActiveWindowID(ctx, probe)
	if err != nil {
		return Attempt{Err: err}
	}

	classes, err := winquery.WindowClass(ctx, probe, id)
	if err != nil {
		return Attempt{Err: err}
	}
	if !hasFileManagerClass(classes) {
		return Attempt{Err: ErrNotFocused}
	}

	title, err := winquery.WindowTitle(ctx, probe, id)
	if err != nil {
		return Attempt{Err: err}
	}
	for _, match := range absPathRe.FindAllString(title, -1) {
		if isDir(s.fs, match) {
			return Attempt{Path: match, OK: true}
		}
	}

	// Title carried no path; window properties sometimes do.
	props, err := winquery.WindowProperties(ctx, probe, id)
	if err != nil {
		return Attempt{Err: err}
	}
	for _, candidate := range winquery.ExtractPaths(props) {
		if isDir(s.fs, candidate) {
			return Attempt{Path: candidate, OK: true}
		}
	}

	return Attempt{Err: ErrNoMatch}
}

func hasFileManagerClass(classes []string) bool {
	for _, class := range classes {
		if strings.Contains(class, winquery.FileManagerClass) {
			return true
		}
	}
	return false
}

// titleStrategy applies the loose title heuristics: localized well-known
// folder names, home aliases, and plain folder names under home. It runs
// after windowStrategy because title text is ambiguous across file-manager
// versions and locales - some versions put no path there at all.
type titleStrategy struct {
	fs FileSystem
}

func (s *titleStrategy) Name() string { return "title" }

func (s *titleStrategy) Attempt(ctx context.Context, probe *ProbeCache) Attempt {
	title, err := activeWindowTitle(ctx, probe)
	if err != nil {
		return Attempt{Err: err}
	}

	if path, ok := pathFromTitle(s.fs, title); ok {
		return Attempt{Path: path, OK: true}
	}
	return Attempt{Err: ErrNoMatch}
}

// activeWindowTitle fetches the focused window's title. The probe cache
// makes this free when an earlier strategy already asked.
func activeWindowTitle(ctx context.Context, probe *ProbeCache) (string, error) {
	id, err := winquery.ActiveWindowID(ctx, probe)
	if err != nil {
		return "", err
	}
	return winquery.WindowTitle(ctx, probe, id)
}
