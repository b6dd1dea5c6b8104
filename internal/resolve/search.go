package resolve

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// skippedDirs are directory names never descended into during a name search.
// They are either huge (dependency trees, caches) or never what a file
// manager shows.
var skippedDirs = map[string]bool{
	".git":         true,
	".cache":       true,
	".local":       true,
	".config":      true,
	".mozilla":     true,
	"node_modules": true,
	"__pycache__":  true,
	"venv":         true,
	".venv":        true,
	"snap":         true,
	".npm":         true,
	".cargo":       true,
	".rustup":      true,
}

// searchStrategy derives a plain folder name from the focused window's title
// and searches for a matching directory under the home tree. It is the
// slowest strategy in the chain, so it carries its own timeout and depth
// limit on top of the resolver's overall budget.
type searchStrategy struct {
	fs       FileSystem
	maxDepth int
	timeout  time.Duration
}

func (s *searchStrategy) Name() string { return "search" }

func (s *searchStrategy) Attempt(ctx context.Context, probe *ProbeCache) Attempt {
	title, err := activeWindowTitle(ctx, probe)
	if err != nil {
		return Attempt{Err: err}
	}
	name, ok := candidateName(title)
	if !ok {
		return Attempt{Err: ErrNoMatch}
	}

	home, err := s.fs.UserHomeDir()
	if err != nil {
		return Attempt{Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	roots := searchRoots(s.fs, home)

	// Cheap pass first: a direct child of any root, matched case
	// insensitively so "proyectos" finds ~/Proyectos.
	for _, root := range roots {
		if path, ok := childNamed(s.fs, root, name); ok {
			return Attempt{Path: path, OK: true}
		}
	}

	if path, ok := s.deepSearch(ctx, roots, name); ok {
		return Attempt{Path: path, OK: true}
	}
	return Attempt{Err: ErrNoMatch}
}

// searchRoots returns home plus its well-known subfolders that exist, in a
// fixed order so repeated searches for the same name pick the same match.
func searchRoots(fs FileSystem, home string) []string {
	roots := []string{home}
	for _, folder := range wellKnownFolders {
		for _, target := range folder.targets {
			path := filepath.Join(home, target)
			if isDir(fs, path) {
				roots = append(roots, path)
			}
		}
	}
	return roots
}

// childNamed looks for a directory entry of root matching name, ignoring
// case.
func childNamed(fs FileSystem, root, name string) (string, bool) {
	entries, err := fs.ReadDir(root)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if strings.EqualFold(entry.Name(), name) {
			path := filepath.Join(root, entry.Name())
			if isDir(fs, path) {
				return path, true
			}
		}
	}
	return "", false
}

// deepSearch walks every root concurrently up to maxDepth, then picks the
// match from the earliest root in chain order. Collecting per-root results
// before choosing keeps the outcome deterministic regardless of goroutine
// scheduling.
func (s *searchStrategy) deepSearch(ctx context.Context, roots []string, name string) (string, bool) {
	found := make([]string, len(roots))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		g.Go(func() error {
			if path, ok := s.walkFor(ctx, root, name, 0); ok {
				mu.Lock()
				found[i] = path
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, path := range found {
		if path != "" {
			return path, true
		}
	}
	return "", false
}

func (s *searchStrategy) walkFor(ctx context.Context, dir, name string, depth int) (string, bool) {
	if ctx.Err() != nil || depth > s.maxDepth {
		return "", false
	}
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if !entry.IsDir() || skippedDirs[entry.Name()] {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if strings.EqualFold(entry.Name(), name) {
			return path, true
		}
		if sub, ok := s.walkFor(ctx, path, name, depth+1); ok {
			return sub, ok
		}
	}
	return "", false
}
