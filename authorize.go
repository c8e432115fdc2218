package prax

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/rotkonetworks/prax/internal/clock"
	"github.com/rotkonetworks/prax/internal/idgen"
	"github.com/rotkonetworks/prax/model/transaction"
	"github.com/rotkonetworks/prax/policy"
	"github.com/rotkonetworks/prax/service/approval"
	"github.com/rotkonetworks/prax/tracing"
)

// State labels the orchestration phases of one authorization request; used
// for logging and span attributes.
type State string

const (
	StateStarted          State = "started"
	StateAutoApproved     State = "autoApproved"
	StateAwaitingApproval State = "awaitingHumanApproval"
	StateCompleted        State = "completed"
	StateDenied           State = "denied"
	StateFailed           State = "failed"
)

type signResult struct {
	data *transaction.AuthorizationData
	err  error
}

type approvalResult struct {
	decision *approval.Decision
	err      error
}

// Authorize races the custody signing operation against the policy decision
// and, when the decision denies, against interactive approval.
//
// Signing starts immediately so the auto-approved path pays no policy
// latency; the policy gates release of the result, not its computation. The
// custody backend is never asked to abort a signing already under way, so
// only side-effect-free backends should be raced this way (see
// custody/local).
//
// When the decision denies, the signing and approval operations are joined:
// no outcome is released until both settle. A negative approval yields
// ErrPolicyDenied even if signing failed concurrently; an errored approval
// channel yields ErrApprovalChannelFailed. The specific deny reason is
// logged locally and never returned to the requesting origin.
func (s *Service) Authorize(ctx context.Context, plan *transaction.TransactionPlan, origin string) (*transaction.AuthorizationData, error) {
	ctx, span := tracing.StartSpan(ctx, "prax.authorize")
	var err error
	defer func() { tracing.EndSpan(span, err) }()
	span.WithAttributes(map[string]string{
		"origin": origin,
		"state":  string(StateStarted),
	})

	if plan == nil {
		err = fmt.Errorf("%w: nil transaction plan", ErrPreconditionUnmet)
		return nil, err
	}
	if s.custody == nil {
		err = fmt.Errorf("%w: custody service not configured", ErrPreconditionUnmet)
		return nil, err
	}

	signCh := make(chan signResult, 1)
	go func() {
		data, signErr := s.custody.AuthorizePlan(ctx, plan)
		if signErr != nil {
			log.WithFields(log.Fields{
				"origin": origin,
				"error":  signErr.Error(),
			}).Error("custody signing failed")
		}
		signCh <- signResult{data: data, err: signErr}
	}()

	settings, loadErr := s.tradingMode.Settings(ctx)
	if loadErr != nil {
		log.WithFields(log.Fields{
			"error": loadErr.Error(),
		}).Error("failed to load trading-mode settings")
		err = fmt.Errorf("%w: trading-mode settings unavailable: %v", ErrPreconditionUnmet, loadErr)
		return nil, err
	}

	decision := policy.Decide(settings, plan, origin, clock.Now())
	if decision.Allowed {
		span.SetAttribute("state", string(StateAutoApproved))
		log.WithFields(log.Fields{
			"origin": origin,
		}).Info("auto-signing swap transaction")

		signed := <-signCh
		if signed.err != nil {
			span.SetAttribute("state", string(StateFailed))
			err = fmt.Errorf("%w: %v", ErrSigningFailed, signed.err)
			return nil, err
		}
		span.SetAttribute("state", string(StateCompleted))
		return signed.data, nil
	}

	// Deny reason stays in local diagnostics; the origin only ever sees the
	// generic denial.
	span.SetAttribute("state", string(StateAwaitingApproval))
	log.WithFields(log.Fields{
		"origin": origin,
		"reason": decision.Reason,
	}).Info("auto-sign denied, requesting interactive approval")

	request := &approval.Request{
		ID:        idgen.New(),
		Origin:    origin,
		Plan:      plan,
		Reason:    decision.Reason,
		CreatedAt: clock.Now(),
	}
	approvalCh := make(chan approvalResult, 1)
	go func() {
		if reqErr := s.approvals.RequestApproval(ctx, request); reqErr != nil {
			approvalCh <- approvalResult{err: reqErr}
			return
		}
		verdict, waitErr := approval.WaitForDecision(ctx, s.approvals, request.ID, s.decisionTimeout)
		approvalCh <- approvalResult{decision: verdict, err: waitErr}
	}()

	// Join: both operations must settle before any outcome is released.
	signed := <-signCh
	approved := <-approvalCh

	if approved.err != nil {
		log.WithFields(log.Fields{
			"origin":  origin,
			"request": request.ID,
			"error":   approved.err.Error(),
		}).Error("approval channel failed")
		span.SetAttribute("state", string(StateFailed))
		err = fmt.Errorf("%w: %v", ErrApprovalChannelFailed, approved.err)
		return nil, err
	}
	if !approved.decision.Approved {
		// Denial wins over a late signing failure: the policy verdict is
		// reported, the discarded signing result is not.
		span.SetAttribute("state", string(StateDenied))
		err = ErrPolicyDenied
		return nil, err
	}
	if signed.err != nil {
		span.SetAttribute("state", string(StateFailed))
		err = fmt.Errorf("%w: %v", ErrSigningFailed, signed.err)
		return nil, err
	}
	span.SetAttribute("state", string(StateCompleted))
	return signed.data, nil
}
