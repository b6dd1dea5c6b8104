package launch

import (
	"fmt"
)

// EditorRejectedError is returned when an editor command fails validation.
type EditorRejectedError struct {
	Command string
	Reason  string
}

func (e *EditorRejectedError) Error() string {
	return fmt.Sprintf("editor command %q rejected: %s", e.Command, e.Reason)
}

func (e *EditorRejectedError) InvalidInput() bool {
	return true
}

// EditorNotFoundError is returned when no usable editor could be located,
// neither the configured one nor any of the common fallbacks.
type EditorNotFoundError struct {
	Command string
}

func (e *EditorNotFoundError) Error() string {
	return fmt.Sprintf("no usable editor found (configured: %q)", e.Command)
}

func (e *EditorNotFoundError) NotFound() bool {
	return true
}

// DirectoryRejectedError is returned when a target directory fails
// validation.
type DirectoryRejectedError struct {
	Path   string
	Reason string
}

func (e *DirectoryRejectedError) Error() string {
	return fmt.Sprintf("directory %q rejected: %s", e.Path, e.Reason)
}

func (e *DirectoryRejectedError) InvalidInput() bool {
	return true
}

// StartError is returned when spawning the editor process fails.
type StartError struct {
	Command string
	Cause   error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("failed to start %q: %v", e.Command, e.Cause)
}

func (e *StartError) Unwrap() error {
	return e.Cause
}
