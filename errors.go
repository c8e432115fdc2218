package prax

import "errors"

// Authorization outcomes are normalized to one of four error kinds; callers
// detect them with errors.Is. The kinds deliberately carry no policy detail:
// a requesting origin only ever sees the generic message, while the specific
// deny reason stays in local logs.

var (
	// ErrPolicyDenied - auto-sign was refused and the interactive approval
	// was negative or never affirmatively given.
	ErrPolicyDenied = errors.New("authorization denied")

	// ErrSigningFailed - the custody collaborator errored.
	ErrSigningFailed = errors.New("authorization failed")

	// ErrApprovalChannelFailed - the interactive-approval collaborator
	// errored (for example the approval surface was dismissed improperly).
	// Treated as a negative approval for releasing the signing result, but
	// reported as an internal failure rather than a plain denial.
	ErrApprovalChannelFailed = errors.New("approval failed")

	// ErrPreconditionUnmet - inputs required for evaluation are missing or
	// invalid before any custody round trip completes.
	ErrPreconditionUnmet = errors.New("authorization precondition unmet")
)
