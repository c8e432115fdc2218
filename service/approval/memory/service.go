// Package memory provides the in-memory approval.Service used in tests and
// single-process deployments.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rotkonetworks/prax/internal/clock"
	"github.com/rotkonetworks/prax/internal/idgen"
	"github.com/rotkonetworks/prax/service/approval"
	"github.com/rotkonetworks/prax/service/dao"
	"github.com/rotkonetworks/prax/service/dao/store"
	"github.com/rotkonetworks/prax/service/messaging"
	qmem "github.com/rotkonetworks/prax/service/messaging/memory"
)

type service struct {
	reqDAO dao.Service[string, approval.Request]
	decDAO dao.Service[string, approval.Decision]

	// fan-out queue
	events messaging.Queue[approval.Event]

	// optional lifetime applied to requests without an explicit deadline;
	// zero means requests never expire.
	requestTTL int64 // milliseconds

	// ids whose expiry event has already been published; one expiry must
	// fan out exactly one event no matter how often the request is polled.
	expiredMu sync.Mutex
	expired   map[string]bool
}

// key selectors - grab ID field
func reqKey(r *approval.Request) string  { return r.ID }
func decKey(d *approval.Decision) string { return d.ID }

// New creates an in-memory approval service.
func New(options ...Option) approval.Service {
	ret := &service{
		reqDAO:  store.NewMemoryStore[string, approval.Request](reqKey),
		decDAO:  store.NewMemoryStore[string, approval.Decision](decKey),
		events:  qmem.NewQueue[approval.Event](qmem.DefaultConfig()),
		expired: make(map[string]bool),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

/* ---------------- DAO-style operations -------------------------------- */

func (s *service) RequestApproval(ctx context.Context, r *approval.Request) error {
	if r == nil || r.Plan == nil {
		return errors.New("invalid approval request")
	}
	if r.ID == "" {
		r.ID = idgen.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = clock.Now()
	}
	if r.ExpiresAt == nil && s.requestTTL > 0 {
		deadline := r.CreatedAt.Add(millis(s.requestTTL))
		r.ExpiresAt = &deadline
	}

	// Idempotent save - overwrite any previous copy to handle
	// re-submissions gracefully.
	if err := s.reqDAO.Save(ctx, r); err != nil {
		return err
	}
	_ = s.events.Publish(ctx, &approval.Event{Topic: approval.TopicRequestCreated, Data: r})
	return nil
}

func (s *service) ListPending(ctx context.Context) ([]*approval.Request, error) {
	all, err := s.reqDAO.List(ctx)
	if err != nil {
		return nil, err
	}
	now := clock.Now()
	pending := make([]*approval.Request, 0, len(all))
	for _, r := range all {
		if r.ExpiresAt != nil && !r.ExpiresAt.After(now) {
			continue
		}
		if d, _ := s.decDAO.Load(ctx, r.ID); d == nil {
			pending = append(pending, r)
		}
	}
	return pending, nil
}

func (s *service) Decision(ctx context.Context, id string) (*approval.Decision, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}
	decision, err := s.decDAO.Load(ctx, id)
	if err != nil && !errors.Is(err, dao.ErrNotFound) {
		return nil, err
	}
	if decision != nil {
		return decision, nil
	}
	request, err := s.reqDAO.Load(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, fmt.Errorf("approval request %s not found", id)
		}
		return nil, err
	}
	if request.ExpiresAt != nil && !request.ExpiresAt.After(clock.Now()) {
		s.markExpired(ctx, request)
		return nil, fmt.Errorf("approval request %s expired", id)
	}
	return nil, nil
}

func (s *service) Decide(ctx context.Context, id string, ok bool, reason string) (*approval.Decision, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}
	request, _ := s.reqDAO.Load(ctx, id)
	if request == nil {
		return nil, fmt.Errorf("approval request %s not found", id)
	}
	if d, _ := s.decDAO.Load(ctx, id); d != nil {
		return nil, fmt.Errorf("approval request %s already decided", id)
	}
	if request.ExpiresAt != nil && !request.ExpiresAt.After(clock.Now()) {
		s.markExpired(ctx, request)
		return nil, fmt.Errorf("approval request %s expired", id)
	}

	d := &approval.Decision{
		ID:        id,
		Approved:  ok,
		Reason:    reason,
		DecidedAt: clock.Now(),
	}
	if err := s.decDAO.Save(ctx, d); err != nil {
		return nil, err
	}
	_ = s.events.Publish(ctx, &approval.Event{Topic: approval.TopicDecisionCreated, Data: d})
	return d, nil
}

// markExpired publishes the request.expired event on first detection only.
func (s *service) markExpired(ctx context.Context, r *approval.Request) {
	s.expiredMu.Lock()
	seen := s.expired[r.ID]
	s.expired[r.ID] = true
	s.expiredMu.Unlock()
	if !seen {
		_ = s.events.Publish(ctx, &approval.Event{Topic: approval.TopicRequestExpired, Data: r})
	}
}

/* ---------------- Broker-style ---------------------------------------- */

func (s *service) Queue() messaging.Queue[approval.Event] { return s.events }

var _ approval.Service = (*service)(nil)
