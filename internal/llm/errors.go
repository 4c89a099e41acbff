package llm

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when no provider credentials are present in
// the environment. It is not a failure: the caller is expected to fall
// back to the local assessment path.
var ErrNotConfigured = errors.New("no completion provider configured")

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	Err error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrEmptyCompletion indicates the provider returned an envelope with no
// usable text content.
type ErrEmptyCompletion struct {
	Err error
}

func (e *ErrEmptyCompletion) Error() string {
	return fmt.Sprintf("empty completion: %v", e.Err)
}

func (e *ErrEmptyCompletion) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down, unreachable, or
// rejected the request.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("completion provider unavailable: %v", e.Err)
	}
	return "completion provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }
