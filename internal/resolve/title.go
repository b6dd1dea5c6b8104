package resolve

import (
	"path/filepath"
	"regexp"
	"strings"
)

// managerLabels are the window-title decorations the file manager adds
// around the folder name, in English and Spanish.
var managerLabels = []string{
	"Files",
	"Archivos",
	"File Manager",
	"Gestor de archivos",
	"Nautilus",
	"org.gnome.Nautilus",
}

// wellKnownFolders maps localized display names (lowercased) to the folder
// name under the home directory. Both localizations map to both targets so a
// Spanish title finds an English-named folder and vice versa.
var wellKnownFolders = []struct {
	names   []string
	targets []string
}{
	{[]string{"documents", "documentos"}, []string{"Documents", "Documentos"}},
	{[]string{"downloads", "descargas"}, []string{"Downloads", "Descargas"}},
	{[]string{"pictures", "imágenes", "imagenes"}, []string{"Pictures", "Imágenes"}},
	{[]string{"music", "música", "musica"}, []string{"Music", "Música"}},
	{[]string{"videos", "vídeos"}, []string{"Videos", "Vídeos"}},
	{[]string{"desktop", "escritorio"}, []string{"Desktop", "Escritorio"}},
	{[]string{"public", "público", "publico"}, []string{"Public", "Público"}},
	{[]string{"templates", "plantillas"}, []string{"Templates", "Plantillas"}},
}

// homeAliases are titles meaning the home directory itself.
var homeAliases = map[string]bool{
	"home":             true,
	"carpeta personal": true,
	"personal folder":  true,
}

var absPathRe = regexp.MustCompile(`(/[^\s]+(?:/[^\s]*)*)`)

// cleanTitle strips file-manager decorations: known labels on either side of
// a " - " separator, the unsaved-work marker, and surrounding whitespace.
func cleanTitle(title string) string {
	title = strings.TrimSpace(title)
	title = strings.TrimLeft(title, "✳ ")

	segments := strings.Split(title, " - ")
	kept := segments[:0]
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" || isManagerLabel(seg) {
			continue
		}
		kept = append(kept, seg)
	}
	if len(kept) == 0 {
		return ""
	}
	return kept[0]
}

func isManagerLabel(s string) bool {
	for _, label := range managerLabels {
		if strings.EqualFold(s, label) {
			return true
		}
	}
	return false
}

// pathFromTitle extracts a directory path from a window title: absolute
// paths first, then localized well-known folder names, then a plain folder
// name relative to home. Every candidate is validated against fs before
// being returned.
func pathFromTitle(fs FileSystem, title string) (string, bool) {
	if strings.TrimSpace(title) == "" {
		return "", false
	}

	cleaned := cleanTitle(title)

	// Full path in the cleaned title.
	if strings.HasPrefix(cleaned, "/") && isDir(fs, cleaned) {
		return cleaned, true
	}

	// Path fragments anywhere in the original title.
	for _, match := range absPathRe.FindAllString(title, -1) {
		if isDir(fs, match) {
			return match, true
		}
	}

	home, err := fs.UserHomeDir()
	if err != nil || cleaned == "" {
		return "", false
	}

	if homeAliases[strings.ToLower(cleaned)] {
		return home, true
	}

	// Localized well-known folders: exact match first, then substring.
	if path, ok := lookupWellKnown(fs, home, cleaned, true); ok {
		return path, true
	}
	if path, ok := lookupWellKnown(fs, home, cleaned, false); ok {
		return path, true
	}

	// Plain folder name directly under home.
	if !strings.Contains(cleaned, "/") {
		path := filepath.Join(home, cleaned)
		if isDir(fs, path) {
			return path, true
		}
	}

	return "", false
}

func lookupWellKnown(fs FileSystem, home, title string, exact bool) (string, bool) {
	lower := strings.ToLower(title)
	for _, folder := range wellKnownFolders {
		for _, name := range folder.names {
			if exact && lower != name {
				continue
			}
			if !exact && !strings.Contains(lower, name) {
				continue
			}
			for _, target := range folder.targets {
				path := filepath.Join(home, target)
				if isDir(fs, path) {
					return path, true
				}
			}
		}
	}
	return "", false
}

// candidateName extracts a bare folder name from a title for the name-based
// search fallback. Returns false for titles that cannot name a folder
// (paths, empty, pure manager labels).
func candidateName(title string) (string, bool) {
	cleaned := cleanTitle(title)
	if cleaned == "" || strings.Contains(cleaned, "/") {
		return "", false
	}
	return cleaned, true
}
