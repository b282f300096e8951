// Package optimize implements the autonomous merge workflow that grows the
// vocabulary from discovered candidate terms.
package optimize

import "fmt"

// MissingInputError reports an absent prerequisite artifact. The workflow
// never runs, and never mutates anything, when its input is missing.
type MissingInputError struct {
	Path    string
	Message string
	Cause   error
}

func (e *MissingInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("missing input %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("missing input %s: %s", e.Path, e.Message)
}

func (e *MissingInputError) Unwrap() error {
	return e.Cause
}
