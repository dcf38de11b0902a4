package workdir

import (
	"fmt"

	"github.com/pkg/errors"
)

// QueryFailure is returned by Query when the OS wrote nothing into the path
// buffer.
type QueryFailure struct {
	Requested uint32 // buffer size handed to the second call
	Err       error  // OS error, may be nil
}

func (e *QueryFailure) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("workdir: query failed (size=%d)", e.Requested)
	}
	return fmt.Sprintf("workdir: query failed (size=%d): %v", e.Requested, e.Err)
}

// Cause returns the underlying OS error, for errors.Cause.
func (e *QueryFailure) Cause() error { return e.Err }

func (e *QueryFailure) Unwrap() error { return e.Err }

// IsQueryFailure reports whether err is, or wraps, a *QueryFailure.
func IsQueryFailure(err error) bool {
	var qf *QueryFailure
	return errors.As(err, &qf)
}
