package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rotkonetworks/prax/model/transaction"
)

func action(kind transaction.ActionKind) transaction.Action {
	return transaction.Action{Kind: kind}
}

func spend(lo, hi uint64) transaction.Action {
	return transaction.Action{
		Kind: transaction.KindSpend,
		Spend: &transaction.SpendPlan{
			Note: &transaction.Note{
				Value: &transaction.Value{Amount: transaction.NewAmount(lo, hi)},
			},
		},
	}
}

func plan(actions ...transaction.Action) *transaction.TransactionPlan {
	return &transaction.TransactionPlan{Actions: actions}
}

func TestIsSwapOnly(t *testing.T) {
	type testCase struct {
		name     string
		plan     *transaction.TransactionPlan
		expected bool
	}

	tests := []testCase{{
		name:     "empty plan is never auto-signable",
		plan:     plan(),
		expected: false,
	}, {
		name:     "nil plan",
		plan:     nil,
		expected: false,
	}, {
		name:     "single swap",
		plan:     plan(action(transaction.KindSwap)),
		expected: true,
	}, {
		name:     "swap claim",
		plan:     plan(action(transaction.KindSwapClaim)),
		expected: true,
	}, {
		name:     "swap with spend and output mechanics",
		plan:     plan(spend(5, 0), action(transaction.KindSwap), action(transaction.KindOutput)),
		expected: true,
	}, {
		name:     "spend and output without swap is a transfer",
		plan:     plan(spend(5, 0), action(transaction.KindOutput)),
		expected: false,
	}, {
		name:     "delegate disqualifies even with swaps present",
		plan:     plan(action(transaction.KindSwap), action(transaction.KindDelegate), action(transaction.KindSwap)),
		expected: false,
	}, {
		name:     "ics20 withdrawal disqualifies",
		plan:     plan(action(transaction.KindSwap), action(transaction.KindICS20Withdrawal)),
		expected: false,
	}, {
		name:     "unknown kind disqualifies",
		plan:     plan(action(transaction.KindSwap), action(transaction.ActionKind("teleport"))),
		expected: false,
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsSwapOnly(tc.plan))
		})
	}
}

func TestIsSwapOnlyRejectsEveryNonSwapKind(t *testing.T) {
	for _, kind := range transaction.Kinds() {
		switch kind {
		case transaction.KindSwap, transaction.KindSwapClaim,
			transaction.KindSpend, transaction.KindOutput:
			continue
		}
		p := plan(action(transaction.KindSwap), action(kind))
		assert.False(t, IsSwapOnly(p), "kind %s must disqualify", kind)
	}
}

func TestTotalSpendValue(t *testing.T) {
	type testCase struct {
		name     string
		plan     *transaction.TransactionPlan
		expected string
	}

	tests := []testCase{{
		name:     "no spends yields zero",
		plan:     plan(action(transaction.KindSwap), action(transaction.KindOutput)),
		expected: "0",
	}, {
		name:     "nil plan yields zero",
		plan:     nil,
		expected: "0",
	}, {
		name:     "low words sum",
		plan:     plan(spend(5, 0), spend(10, 0)),
		expected: "15",
	}, {
		name:     "high word contributes 2^64",
		plan:     plan(spend(0, 1)),
		expected: "18446744073709551616",
	}, {
		name:     "mixed words do not truncate",
		plan:     plan(spend(1, 1), spend(2, 0)),
		expected: "18446744073709551619",
	}, {
		name:     "spend without note is skipped",
		plan:     plan(action(transaction.KindSpend), spend(7, 0)),
		expected: "7",
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TotalSpendValue(tc.plan).String())
		})
	}
}
