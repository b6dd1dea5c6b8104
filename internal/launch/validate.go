package launch

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// maxEditorBinarySize caps how large an editor binary may be before it is
// treated as suspect.
const maxEditorBinarySize = 500 * 1024 * 1024

// dangerousCommands are never accepted as an editor, whatever path they
// live at.
var dangerousCommands = map[string]bool{
	"rm": true, "sudo": true, "su": true, "chmod": true, "chown": true,
	"dd": true, "mkfs": true, "fdisk": true, "shutdown": true,
	"reboot": true, "halt": true, "poweroff": true, "init": true,
	"killall": true, "pkill": true, "kill": true, "systemctl": true,
	"service": true, "bash": true, "sh": true, "zsh": true,
	"python": true, "perl": true, "ruby": true, "node": true,
	"wget": true, "curl": true, "nc": true, "netcat": true,
}

// knownEditors is the whitelist of editor binaries accepted by name.
var knownEditors = map[string]bool{
	"code": true, "code-insiders": true, "codium": true, "vscodium": true,
	"vim": true, "nvim": true, "vi": true, "nano": true, "emacs": true,
	"gedit": true, "kate": true, "sublime_text": true, "subl": true,
	"atom": true, "mousepad": true, "pluma": true, "xed": true,
	"geany": true, "brackets": true,
}

var systemBinDirs = []string{"/bin/", "/sbin/", "/usr/bin/", "/usr/sbin/", "/usr/local/bin/"}

// forbiddenDirs are exact directories the editor must never be pointed at.
// Subdirectories are judged separately by the allowed-prefix check.
var forbiddenDirs = map[string]bool{
	"/root": true, "/etc": true, "/sys": true, "/proc": true,
	"/dev": true, "/boot": true, "/var/log": true,
	"/usr/sbin": true, "/sbin": true,
}

var allowedPrefixes = []string{"/tmp/", "/var/tmp/", "/opt/", "/usr/local/", "/media/", "/mnt/"}

// ValidateEditorCommand resolves cmd to a real executable path and rejects
// anything outside the editor whitelist. Arguments after the first word are
// discarded; they are never passed through from configuration.
func ValidateEditorCommand(fs FileSystem, cmd string) (string, error) {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return "", &EditorRejectedError{Command: cmd, Reason: "empty command"}
	}
	if fields := strings.Fields(cmd); len(fields) > 0 {
		cmd = fields[0]
	}

	base := filepath.Base(cmd)
	if dangerousCommands[base] || strings.HasPrefix(base, "rm") {
		return "", &EditorRejectedError{Command: cmd, Reason: "command is blacklisted"}
	}

	if filepath.IsAbs(cmd) {
		return validateAbsoluteEditor(fs, cmd, base)
	}

	// Bare name: resolve through PATH, then whitelist by name.
	found, err := fs.LookPath(cmd)
	if err != nil {
		return "", &EditorRejectedError{Command: cmd, Reason: "not found in PATH"}
	}
	real, _, err := resolveExecutable(fs, found)
	if err != nil {
		return "", err
	}
	if !matchesKnownEditor(base, real) {
		return "", &EditorRejectedError{Command: cmd, Reason: "not a known editor"}
	}
	return real, nil
}

func validateAbsoluteEditor(fs FileSystem, cmd, base string) (string, error) {
	real, info, err := resolveExecutable(fs, cmd)
	if err != nil {
		return "", err
	}

	if matchesKnownEditor(base, real) {
		return real, nil
	}

	// Unknown binaries under system dirs are rejected outright.
	for _, dir := range systemBinDirs {
		if strings.HasPrefix(real, dir) {
			return "", &EditorRejectedError{Command: cmd, Reason: "unknown binary in system directory"}
		}
	}

	// Elsewhere the binary must belong to the current user and must not be
	// writable by others.
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		if int(st.Uid) != os.Getuid() {
			return "", &EditorRejectedError{Command: cmd, Reason: "binary not owned by current user"}
		}
	}
	if info.Mode().Perm()&0o002 != 0 {
		return "", &EditorRejectedError{Command: cmd, Reason: "binary is world-writable"}
	}
	return real, nil
}

// resolveExecutable follows symlinks and checks the target is a regular,
// executable, reasonably sized file.
func resolveExecutable(fs FileSystem, path string) (string, os.FileInfo, error) {
	real, err := fs.Realpath(path)
	if err != nil {
		return "", nil, &EditorRejectedError{Command: path, Reason: "cannot resolve path"}
	}
	info, err := fs.Stat(real)
	if err != nil || !info.Mode().IsRegular() {
		return "", nil, &EditorRejectedError{Command: path, Reason: "not a regular file"}
	}
	if info.Mode().Perm()&0o111 == 0 {
		return "", nil, &EditorRejectedError{Command: path, Reason: "not executable"}
	}
	if info.Size() > maxEditorBinarySize {
		return "", nil, &EditorRejectedError{Command: path, Reason: "binary too large"}
	}
	return real, info, nil
}

func matchesKnownEditor(base, realPath string) bool {
	if knownEditors[base] {
		return true
	}
	lower := strings.ToLower(realPath)
	for editor := range knownEditors {
		if strings.Contains(lower, editor) {
			return true
		}
	}
	return false
}

// ValidateDirectory resolves path and rejects system locations the widget
// must never open an editor in. Allowed roots are the user home, temp
// directories, /opt, /usr/local, and mounted media.
func ValidateDirectory(fs FileSystem, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", &DirectoryRejectedError{Path: path, Reason: "empty path"}
	}

	real, err := fs.Realpath(path)
	if err != nil {
		return "", &DirectoryRejectedError{Path: path, Reason: "cannot resolve path"}
	}
	info, err := fs.Stat(real)
	if err != nil || !info.IsDir() {
		return "", &DirectoryRejectedError{Path: path, Reason: "not a directory"}
	}
	if _, err := fs.ReadDir(real); err != nil {
		return "", &DirectoryRejectedError{Path: path, Reason: "not readable"}
	}

	if forbiddenDirs[real] {
		return "", &DirectoryRejectedError{Path: path, Reason: "system directory"}
	}

	home, err := fs.UserHomeDir()
	if err == nil && (real == home || strings.HasPrefix(real, home+"/")) {
		return real, nil
	}
	for _, prefix := range allowedPrefixes {
		if strings.HasPrefix(real, prefix) || real == strings.TrimSuffix(prefix, "/") {
			return real, nil
		}
	}
	return "", &DirectoryRejectedError{Path: path, Reason: "outside allowed locations"}
}
