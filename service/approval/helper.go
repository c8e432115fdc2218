package approval

import (
	"context"
	"fmt"
	"time"
)

// DecisionFunc decides what to do with a pending request: return (true, "")
// to approve, or (false, reason) to reject.
type DecisionFunc func(r *Request) (approved bool, reason string)

// WaitForDecision polls the service until a decision for id is recorded and
// returns it. It gives up when timeout elapses (timeout <= 0 waits until ctx
// is done). The polling interval is deliberately short; interactive
// decisions are rare and slow compared to it.
func WaitForDecision(ctx context.Context, svc Service, id string, timeout time.Duration) (*Decision, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	for {
		decision, err := svc.Decision(ctx, id)
		if err != nil {
			return nil, err
		}
		if decision != nil {
			return decision, nil
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for decision on request %s: %w", id, ctx.Err())
		case <-ticker.C:
		}
	}
}

// AutoDecider starts a goroutine that polls ListPending and applies fn to
// every request. It returns stop() - call it (or cancel ctx) to exit.
func AutoDecider(ctx context.Context, svc Service, fn DecisionFunc, interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = 20 * time.Millisecond
	}
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case <-ticker.C:
				reqs, _ := svc.ListPending(ctx)
				for _, r := range reqs {
					ok, reason := fn(r)
					_, _ = svc.Decide(ctx, r.ID, ok, reason)
				}
			}
		}
	}()
	return func() { close(done) }
}

// AutoApprove automatically approves all pending requests.
func AutoApprove(ctx context.Context, svc Service, interval time.Duration) func() {
	return AutoDecider(ctx, svc,
		func(*Request) (bool, string) { return true, "" }, interval)
}

// AutoReject automatically rejects all pending requests with the given reason.
func AutoReject(ctx context.Context, svc Service, reason string, interval time.Duration) func() {
	return AutoDecider(ctx, svc,
		func(*Request) (bool, string) { return false, reason }, interval)
}
