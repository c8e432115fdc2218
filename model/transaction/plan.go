// Package transaction defines the transaction plan model consumed by the
// authorization policy engine. The engine only inspects the action kind
// sequence and spend amounts; everything else is carried opaquely for the
// custody collaborator.
package transaction

import "encoding/json"

// TransactionPlan is an ordered sequence of actions to be authorized and
// built into a transaction.
type TransactionPlan struct {
	Actions []Action `json:"actions"`
	ChainID string   `json:"chainId,omitempty"`
	Memo    string   `json:"memo,omitempty"`
}

// IsEmpty reports whether the plan carries no actions.
func (p *TransactionPlan) IsEmpty() bool {
	return p == nil || len(p.Actions) == 0
}

// MarshalCanonical renders the plan as deterministic JSON. Custody uses it as
// the effect-hash pre-image, so the encoding must be stable for a given plan.
func (p *TransactionPlan) MarshalCanonical() ([]byte, error) {
	return json.Marshal(p)
}

// AuthorizationData is the custody collaborator's signing artifact: the
// effect hash binding the plan and one authorization signature per spend.
type AuthorizationData struct {
	EffectHash []byte   `json:"effectHash"`
	SpendAuths [][]byte `json:"spendAuths,omitempty"`
}
