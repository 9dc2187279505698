package suggest

import (
	"errors"
	"fmt"
)

// ErrStale is reported for a resolution that finished after a newer query
// was issued. It is not a failure; callers drop the result.
var ErrStale = errors.New("stale result")

// SourceError reports the failure of a single source. It aborts the whole
// resolution.
type SourceError struct {
	Kind Kind
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
