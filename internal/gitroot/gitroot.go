// Package gitroot promotes a directory to its enclosing git worktree root,
// so opening a subfolder of a repository opens the whole project.
package gitroot

import (
	git "github.com/go-git/go-git/v5"
)

// Find returns the worktree root of the repository enclosing dir. The
// second return is false when dir is not inside a git worktree, or the
// repository is bare, or anything about it cannot be read; callers then
// keep the original directory.
func Find(dir string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", false
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repository, nothing to open.
		return "", false
	}
	return wt.Filesystem.Root(), true
}

// Promote applies Find when enabled, otherwise returns dir unchanged.
func Promote(dir string, enabled bool) string {
	if !enabled {
		return dir
	}
	if root, ok := Find(dir); ok {
		return root
	}
	return dir
}
