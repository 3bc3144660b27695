package commitsense

import "fmt"

// ValidationError reports malformed caller input or a target directory
// that fails the existence/repository checks. It is always converted
// into a terminal response at the engine boundary, never thrown past it.
type ValidationError struct {
	Field  string // offending parameter, e.g. "rootDir", "maxSuggestions"
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// GitError wraps an unexpected failure of the repository query layer,
// preserving the original cause.
type GitError struct {
	Op  string // the query that failed, e.g. "staged changes"
	Err error
}

// Error implements the error interface.
func (e *GitError) Error() string {
	return fmt.Sprintf("git operation failed (%s): %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *GitError) Unwrap() error {
	return e.Err
}
