// Package envinfo inspects the desktop session: which display server is
// running, which desktop environment, and which of the external tools the
// detection chain relies on are installed.
package envinfo

import (
	"os"
	"os/exec"
	"strings"
)

// Environment abstracts process environment and PATH lookups.
type Environment interface {
	Getenv(key string) string
	LookPath(cmd string) (string, error)
}

// OSEnvironment implements Environment using the real process environment.
type OSEnvironment struct{}

func (OSEnvironment) Getenv(key string) string            { return os.Getenv(key) }
func (OSEnvironment) LookPath(cmd string) (string, error) { return exec.LookPath(cmd) }

// Tool describes one external dependency and whether it was found.
type Tool struct {
	Name        string
	Description string
	Path        string
	Found       bool
	Required    bool
}

// Info is a snapshot of the session environment.
type Info struct {
	DisplayServer string // "x11" or "wayland"
	Desktop       string // lowercased XDG_CURRENT_DESKTOP
	Session       string // DESKTOP_SESSION
	Tools         []Tool
}

// knownTools lists every external tool the widget can use. gdbus and
// nautilus are required in the sense that without them the primary
// detection path is gone.
var knownTools = []struct {
	name        string
	description string
	required    bool
}{
	{"gdbus", "session bus queries to the file manager", true},
	{"nautilus", "the file manager itself", true},
	{"xdotool", "focused-window detection on X11", false},
	{"xprop", "window property inspection on X11", false},
	{"wmctrl", "window listing", false},
	{"code", "VSCode", false},
	{"code-insiders", "VSCode Insiders", false},
	{"codium", "VSCodium", false},
}

// Detect builds an environment snapshot.
func Detect(env Environment) Info {
	info := Info{
		DisplayServer: "x11",
		Desktop:       strings.ToLower(env.Getenv("XDG_CURRENT_DESKTOP")),
		Session:       env.Getenv("DESKTOP_SESSION"),
	}
	if env.Getenv("WAYLAND_DISPLAY") != "" || env.Getenv("XDG_SESSION_TYPE") == "wayland" {
		info.DisplayServer = "wayland"
	}

	for _, t := range knownTools {
		tool := Tool{Name: t.name, Description: t.description, Required: t.required}
		if path, err := env.LookPath(t.name); err == nil {
			tool.Path = path
			tool.Found = true
		}
		info.Tools = append(info.Tools, tool)
	}
	return info
}

// HasTool reports whether the named tool was found.
func (i Info) HasTool(name string) bool {
	for _, t := range i.Tools {
		if t.Name == name && t.Found {
			return true
		}
	}
	return false
}

// Warnings returns human-readable problems with the current environment,
// ordered by severity.
func (i Info) Warnings() []string {
	var warnings []string
	switch i.DisplayServer {
	case "wayland":
		if !i.HasTool("gdbus") {
			warnings = append(warnings, "on Wayland without gdbus, directory detection is likely to fail (install libglib2.0-bin)")
		}
	default:
		if !i.HasTool("xdotool") {
			warnings = append(warnings, "on X11 without xdotool, detection falls back to coarser heuristics (install xdotool)")
		}
	}
	if !i.HasTool("code") && !i.HasTool("codium") && !i.HasTool("code-insiders") {
		warnings = append(warnings, "no VSCode found in PATH; common install locations will be tried at launch")
	}
	return warnings
}
