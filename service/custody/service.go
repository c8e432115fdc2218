// Package custody defines the signing collaborator contract. The engine
// starts a signing operation for every authorization request; whether its
// result is ever released to the caller is decided elsewhere.
package custody

import (
	"context"

	"github.com/rotkonetworks/prax/model/transaction"
)

// Service authorizes transaction plans, producing the signing artifact.
// Implementations may be slow (hardware keys) and may fail (device or key
// unavailable); they are never retried automatically.
type Service interface {
	AuthorizePlan(ctx context.Context, plan *transaction.TransactionPlan) (*transaction.AuthorizationData, error)
}

// Func adapts a plain function to the Service interface.
type Func func(ctx context.Context, plan *transaction.TransactionPlan) (*transaction.AuthorizationData, error)

// AuthorizePlan calls f.
func (f Func) AuthorizePlan(ctx context.Context, plan *transaction.TransactionPlan) (*transaction.AuthorizationData, error) {
	return f(ctx, plan)
}
