package winquery

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	fileURIRe    = regexp.MustCompile(`'(file://[^']+)'|"(file://[^"]+)"`)
	quotedPathRe = regexp.MustCompile(`["']((?:/[^/"'\s]+)+/?)["']`)
)

// ParseFileURI extracts the first file:// URI from a tool's output and
// decodes it into a filesystem path. gdbus wraps the value in variant
// syntax, e.g. `(<'file:///home/user/Documents'>,)`.
func ParseFileURI(out string) (string, bool) {
	m := fileURIRe.FindStringSubmatch(out)
	if m == nil {
		return "", false
	}
	uri := m[1]
	if uri == "" {
		uri = m[2]
	}
	raw := strings.TrimPrefix(uri, "file://")
	path, err := url.PathUnescape(raw)
	if err != nil {
		return "", false
	}
	if !strings.HasPrefix(path, "/") {
		return "", false
	}
	return path, true
}

// ExtractPaths mines xprop property output for path candidates: file:// URIs
// first, then quoted absolute paths. Candidates are returned in discovery
// order; the caller is responsible for validating them.
func ExtractPaths(out string) []string {
	var paths []string
	seen := map[string]bool{}

	for _, m := range fileURIRe.FindAllStringSubmatch(out, -1) {
		uri := m[1]
		if uri == "" {
			uri = m[2]
		}
		if p, err := url.PathUnescape(strings.TrimPrefix(uri, "file://")); err == nil && !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, m := range quotedPathRe.FindAllStringSubmatch(out, -1) {
		p := strings.TrimSuffix(m[1], "/")
		if p != "" && !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	return paths
}
