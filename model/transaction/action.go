package transaction

// ActionKind discriminates the closed set of action variants a transaction
// plan may carry. The set mirrors the chain's transaction schema; unknown
// kinds must never be treated as benign by policy code.
type ActionKind string

const (
	KindSwap                 ActionKind = "swap"
	KindSwapClaim            ActionKind = "swapClaim"
	KindSpend                ActionKind = "spend"
	KindOutput               ActionKind = "output"
	KindDelegate             ActionKind = "delegate"
	KindUndelegate           ActionKind = "undelegate"
	KindUndelegateClaim      ActionKind = "undelegateClaim"
	KindValidatorDefinition  ActionKind = "validatorDefinition"
	KindIBCRelayAction       ActionKind = "ibcRelayAction"
	KindProposalSubmit       ActionKind = "proposalSubmit"
	KindProposalWithdraw     ActionKind = "proposalWithdraw"
	KindProposalDepositClaim ActionKind = "proposalDepositClaim"
	KindValidatorVote        ActionKind = "validatorVote"
	KindDelegatorVote        ActionKind = "delegatorVote"
	KindPositionOpen         ActionKind = "positionOpen"
	KindPositionClose        ActionKind = "positionClose"
	KindPositionWithdraw     ActionKind = "positionWithdraw"
	KindCommunityPoolSpend   ActionKind = "communityPoolSpend"
	KindCommunityPoolOutput  ActionKind = "communityPoolOutput"
	KindCommunityPoolDeposit ActionKind = "communityPoolDeposit"
	KindICS20Withdrawal      ActionKind = "ics20Withdrawal"
)

// Kinds lists every member of the closed set, in schema order.
func Kinds() []ActionKind {
	return []ActionKind{
		KindSwap, KindSwapClaim, KindSpend, KindOutput,
		KindDelegate, KindUndelegate, KindUndelegateClaim,
		KindValidatorDefinition, KindIBCRelayAction,
		KindProposalSubmit, KindProposalWithdraw, KindProposalDepositClaim,
		KindValidatorVote, KindDelegatorVote,
		KindPositionOpen, KindPositionClose, KindPositionWithdraw,
		KindCommunityPoolSpend, KindCommunityPoolOutput, KindCommunityPoolDeposit,
		KindICS20Withdrawal,
	}
}

// Known reports whether k is a member of the closed kind set.
func (k ActionKind) Known() bool {
	switch k {
	case KindSwap, KindSwapClaim, KindSpend, KindOutput,
		KindDelegate, KindUndelegate, KindUndelegateClaim,
		KindValidatorDefinition, KindIBCRelayAction,
		KindProposalSubmit, KindProposalWithdraw, KindProposalDepositClaim,
		KindValidatorVote, KindDelegatorVote,
		KindPositionOpen, KindPositionClose, KindPositionWithdraw,
		KindCommunityPoolSpend, KindCommunityPoolOutput, KindCommunityPoolDeposit,
		KindICS20Withdrawal:
		return true
	}
	return false
}

// Value holds an amount of a single asset.
type Value struct {
	Amount  *Amount `json:"amount,omitempty"`
	AssetID string  `json:"assetId,omitempty"`
}

// Note is a spendable record; only the value matters to policy code.
type Note struct {
	Value   *Value `json:"value,omitempty"`
	Address string `json:"address,omitempty"`
}

// SpendPlan spends an existing note.
type SpendPlan struct {
	Note *Note `json:"note,omitempty"`
}

// OutputPlan creates a new note for a recipient.
type OutputPlan struct {
	Value   *Value `json:"value,omitempty"`
	Address string `json:"address,omitempty"`
}

// SwapPlan commits an input value to a swap.
type SwapPlan struct {
	SwapValue   *Value `json:"swapValue,omitempty"`
	TradingPair string `json:"tradingPair,omitempty"`
}

// SwapClaimPlan claims the output of a previously submitted swap.
type SwapClaimPlan struct {
	SwapCommitment string `json:"swapCommitment,omitempty"`
}

// Action is a tagged variant: Kind selects which payload pointer (if any) is
// populated. Payloads for kinds the policy engine never inspects are carried
// as opaque raw bodies.
type Action struct {
	Kind      ActionKind     `json:"kind"`
	Spend     *SpendPlan     `json:"spend,omitempty"`
	Output    *OutputPlan    `json:"output,omitempty"`
	Swap      *SwapPlan      `json:"swap,omitempty"`
	SwapClaim *SwapClaimPlan `json:"swapClaim,omitempty"`
	Raw       []byte         `json:"raw,omitempty"`
}
