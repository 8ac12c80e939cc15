package naming

import (
	"errors"
	"fmt"
)

// ErrNoNamer is returned by a strict Service when no namer and no
// fallback can render a value.
var ErrNoNamer = errors.New("no namer registered")

// NamingError wraps a failure while rendering a specific candidate.
// It carries the candidate and the causing error and is never silently
// discarded.
type NamingError struct {
	Candidate any
	Err       error
}

func (e *NamingError) Error() string {
	return fmt.Sprintf("name %v: %v", e.Candidate, e.Err)
}

func (e *NamingError) Unwrap() error { return e.Err }
