// Package winquery asks the window manager and the file manager about the
// currently focused window. All answers come from external tools (xdotool,
// xprop, gdbus); callers supply a Runner so the calls can be cached and
// faked in tests.
package winquery

import (
	"context"
	"strings"
)

// Runner executes an external tool and returns its trimmed stdout.
// This is a consumer-defined interface; resolve.ProbeCache implements it.
type Runner interface {
	Output(ctx context.Context, argv []string) (string, error)
}

// FileManagerClass is the WM_CLASS fragment identifying Nautilus windows.
const FileManagerClass = "nautilus"

// ActiveWindowID returns the X11 id of the currently focused window.
func ActiveWindowID(ctx context.Context, r Runner) (string, error) {
	return r.Output(ctx, []string{"xdotool", "getactivewindow"})
}

// WindowTitle returns the title of the window with the given id.
func WindowTitle(ctx context.Context, r Runner, id string) (string, error) {
	return r.Output(ctx, []string{"xdotool", "getwindowname", id})
}

// WindowClass returns the WM_CLASS strings of the window, lowercased.
func WindowClass(ctx context.Context, r Runner, id string) ([]string, error) {
	out, err := r.Output(ctx, []string{"xprop", "-id", id, "WM_CLASS"})
	if err != nil {
		return nil, err
	}
	return parseClassList(out), nil
}

// SearchWindowsByClass returns the ids of all windows whose class matches.
func SearchWindowsByClass(ctx context.Context, r Runner, class string) ([]string, error) {
	out, err := r.Output(ctx, []string{"xdotool", "search", "--class", class})
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			ids = append(ids, line)
		}
	}
	return ids, nil
}

// WindowProperties returns the raw WM_NAME and _NET_WM_NAME properties of the
// window. The output is xprop's own format; use ExtractPaths to mine it.
func WindowProperties(ctx context.Context, r Runner, id string) (string, error) {
	return r.Output(ctx, []string{"xprop", "-id", id, "WM_NAME", "_NET_WM_NAME"})
}

// FileManagerLocation asks Nautilus over the session bus for the location of
// its frontmost window. The reply carries a file:// URI.
func FileManagerLocation(ctx context.Context, r Runner) (string, error) {
	return r.Output(ctx, []string{
		"gdbus", "call", "--session",
		"--dest", "org.gnome.Nautilus",
		"--object-path", "/org/gnome/Nautilus/window/1",
		"--method", "org.freedesktop.DBus.Properties.Get",
		"org.gnome.Nautilus.Window", "location",
	})
}

// IsFileManagerFocused reports whether the focused window belongs to the
// file manager, by intersecting the focused id with the file-manager window
// list.
func IsFileManagerFocused(ctx context.Context, r Runner) (bool, error) {
	ids, err := SearchWindowsByClass(ctx, r, FileManagerClass)
	if err != nil {
		return false, err
	}
	if len(ids) == 0 {
		return false, nil
	}
	focused, err := ActiveWindowID(ctx, r)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == focused {
			return true, nil
		}
	}
	return false, nil
}

// parseClassList extracts the quoted strings from an xprop WM_CLASS line,
// e.g. `WM_CLASS(STRING) = "org.gnome.Nautilus", "org.gnome.Nautilus"`.
func parseClassList(out string) []string {
	var classes []string
	rest := out
	for {
		start := strings.IndexByte(rest, '"')
		if start < 0 {
			break
		}
		rest = rest[start+1:]
		end := strings.IndexByte(rest, '"')
		if end < 0 {
			break
		}
		classes = append(classes, strings.ToLower(rest[:end]))
		rest = rest[end+1:]
	}
	return classes
}
