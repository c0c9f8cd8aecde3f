// Package winapi wraps the slice of the user32/dwmapi/gdi32 surface the
// chrome layer drives. Wrappers return explicit errors so callers can tell
// "not applicable on this build" apart from a genuinely failed call.
package winapi

import "github.com/pkg/errors"

// ErrUnsupported is returned by every call on non-Windows builds.
var ErrUnsupported = errors.New("winapi: not supported on this platform")

// System is the live implementation backed by the running OS. The zero value
// is ready to use.
type System struct{}
