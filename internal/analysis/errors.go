package analysis

import (
	"errors"
	"fmt"
)

// ErrEmptyPoses rejects a request whose pose list is empty. Maps to a
// client error at the HTTP boundary.
var ErrEmptyPoses = errors.New("pose data is empty")

// MalformedError indicates the model's completion was not valid JSON even
// after fence stripping. Snippet carries a truncated piece of the raw text
// for server-side diagnostics.
type MalformedError struct {
	Snippet string
	Err     error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("model returned non-JSON output %q: %v", e.Snippet, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// SchemaMismatchError indicates the model returned syntactically valid JSON
// that does not satisfy the assessment schema.
type SchemaMismatchError struct {
	Err error
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("model output does not match assessment schema: %v", e.Err)
}

func (e *SchemaMismatchError) Unwrap() error { return e.Err }
