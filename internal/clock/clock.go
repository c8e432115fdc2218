// Package clock wraps the wall clock so session-expiry logic can be pinned
// to a fixed instant in tests.
package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// NowUnixMilli returns the current time in ms since epoch, the unit the
// persisted session deadline is stored in.
func NowUnixMilli() int64 { return Now().UnixMilli() }
