// Package approval models the interactive-approval collaborator: a signing
// request that policy refused to auto-authorize is parked here as a pending
// request until a human (or a test stand-in) records a decision. The
// package owns the request/decision records and the service contract; the
// in-memory implementation lives in the memory subpackage.
package approval
