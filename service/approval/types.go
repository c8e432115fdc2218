package approval

import (
	"time"

	"github.com/rotkonetworks/prax/model/transaction"
)

// Event is the envelope published on the service queue whenever a request is
// created or decided, so front-ends can react without polling.
type Event struct {
	Topic   string            // see topic constants below
	Data    interface{}       // *Request | *Decision
	Headers map[string]string `json:"headers,omitempty"` // optional - correlation-id etc.
}

// Standard event topics.
const (
	TopicRequestCreated  = "request.created"
	TopicRequestExpired  = "request.expired"
	TopicDecisionCreated = "decision.created"
)

// Request is a pending ask for interactive confirmation of a signing
// request.
type Request struct {
	ID        string                       `json:"id"`                  // globally unique, primary key
	Origin    string                       `json:"origin,omitempty"`    // requesting origin, empty when not provided
	Plan      *transaction.TransactionPlan `json:"plan"`                // the plan awaiting confirmation
	Reason    string                       `json:"reason,omitempty"`    // local diagnostic: why auto-sign was denied
	CreatedAt time.Time                    `json:"createdAt"`           // RFC-3339 timestamp
	ExpiresAt *time.Time                   `json:"expiresAt,omitempty"` // optional deadline
	Meta      map[string]interface{}       `json:"meta,omitempty"`      // free-form: wallet id, environment, etc.
}

// Decision records the human verdict for a request.
type Decision struct {
	ID        string    `json:"id"` // same as request.ID
	Approved  bool      `json:"approved"`
	Reason    string    `json:"reason,omitempty"`
	DecidedAt time.Time `json:"decidedAt"`
}
