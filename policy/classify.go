package policy

import (
	"math/big"

	"github.com/rotkonetworks/prax/model/transaction"
)

// IsSwapOnly reports whether the plan consists solely of swap mechanics.
// Auto-signing is restricted to swaps; sends, withdrawals, delegations,
// governance and position actions always require interactive approval.
//
// A plan qualifies when every action is one of swap, swapClaim, spend or
// output (spend/output carry the swap's input and change), AND at least one
// swap or swapClaim is present. A plan of bare spends and outputs is a
// transfer, not a swap, even though each action is individually allowlisted.
func IsSwapOnly(plan *transaction.TransactionPlan) bool {
	if plan.IsEmpty() {
		return false
	}

	hasSwap := false
	for i := range plan.Actions {
		// Exhaustive over the closed kind set: a newly added kind lands in
		// the disallowed branch until someone deliberately moves it.
		switch plan.Actions[i].Kind {
		case transaction.KindSwap, transaction.KindSwapClaim:
			hasSwap = true
		case transaction.KindSpend, transaction.KindOutput:
			// part of swap mechanics
		case transaction.KindDelegate, transaction.KindUndelegate,
			transaction.KindUndelegateClaim,
			transaction.KindValidatorDefinition, transaction.KindIBCRelayAction,
			transaction.KindProposalSubmit, transaction.KindProposalWithdraw,
			transaction.KindProposalDepositClaim,
			transaction.KindValidatorVote, transaction.KindDelegatorVote,
			transaction.KindPositionOpen, transaction.KindPositionClose,
			transaction.KindPositionWithdraw,
			transaction.KindCommunityPoolSpend, transaction.KindCommunityPoolOutput,
			transaction.KindCommunityPoolDeposit,
			transaction.KindICS20Withdrawal:
			return false
		default:
			// unknown kind - never swap-safe
			return false
		}
	}
	return hasSwap
}

// TotalSpendValue sums the note value of every spend action, in base units.
// Amounts are 128-bit two-word magnitudes, so the sum is carried as *big.Int
// end to end; a plan with no spends yields zero.
//
// Known approximation, kept on purpose: the sum assumes every spend is
// denominated in the base staking token. No asset-identity check or unit
// conversion is performed, so a plan spending a different asset is
// size-limited in the wrong unit.
func TotalSpendValue(plan *transaction.TransactionPlan) *big.Int {
	total := new(big.Int)
	if plan == nil {
		return total
	}
	for i := range plan.Actions {
		action := &plan.Actions[i]
		if action.Kind != transaction.KindSpend || action.Spend == nil {
			continue
		}
		note := action.Spend.Note
		if note == nil || note.Value == nil || note.Value.Amount == nil {
			continue
		}
		total.Add(total, note.Value.Amount.BigInt())
	}
	return total
}
