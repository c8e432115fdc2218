// Package policy implements the auto-authorization decision for transaction
// signing requests: swap-only classification, overflow-safe value
// aggregation and the ordered rule evaluation that produces an allow/deny
// verdict. Everything in this package is pure; side effects (signing,
// interactive approval, persistence) live with the root service and its
// collaborators.
package policy
