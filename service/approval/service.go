package approval

import (
	"context"

	"github.com/rotkonetworks/prax/service/messaging"
)

// Service defines the approval collaborator contract. RequestApproval parks
// a request; a front-end lists pending requests and calls Decide; callers
// await the outcome with WaitForDecision.
type Service interface {
	RequestApproval(ctx context.Context, r *Request) error
	ListPending(ctx context.Context) ([]*Request, error)

	// Decision returns the recorded decision for id, or nil when the
	// request is still pending.
	Decision(ctx context.Context, id string) (*Decision, error)

	Decide(ctx context.Context, id string, approved bool, reason string) (*Decision, error)
	Queue() messaging.Queue[Event]
}
