// Package idgen wraps the UUID generator so it can be stubbed in tests.
// Callers must treat identifiers as opaque strings.
package idgen

import "github.com/google/uuid"

// NewFunc produces a new globally unique identifier; replace in tests for
// stable ids.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new globally unique identifier as string.
func New() string { return NewFunc() }
