package tickbridge

import (
	"errors"
	"fmt"

	"tickbridge/ffi"
)

// ErrPollTimeout reports that a blocking poll hit its deadline without
// observing a new tick. The engine is presumed frozen or gone; the
// poller itself stays usable for a fresh call.
var ErrPollTimeout = errors.New("tickbridge: no new tick within the timeout")

// Error carries the raw status code of a rejected native call. The
// bridge does not interpret why the engine rejected the call, only
// that it did.
type Error struct {
	Status ffi.Status
}

func (e *Error) Error() string {
	return fmt.Sprintf("tickbridge: engine rejected call: %s", e.Status)
}

// statusError maps a raw status to the typed contract: success is nil,
// anything else wraps the exact status value.
func statusError(status ffi.Status) error {
	if status == ffi.StatusSuccess {
		return nil
	}
	return &Error{Status: status}
}
