package resolve

import (
	"errors"
)

// -- Sentinels --

var (
	// ErrNoDirectoryFound is the terminal error: every strategy in the
	// chain failed or produced an invalid path.
	ErrNoDirectoryFound = errors.New("no directory found")

	// ErrNoMatch means a strategy ran its tools but found no candidate.
	ErrNoMatch = errors.New("no directory candidate")

	// ErrNotFocused means the focused window does not belong to the file
	// manager, so window-derived signals are not trustworthy.
	ErrNotFocused = errors.New("file manager window not focused")

	// ErrInvalidPath means a candidate was extracted but is not an
	// existing, readable directory.
	ErrInvalidPath = errors.New("candidate path is not a readable directory")
)
