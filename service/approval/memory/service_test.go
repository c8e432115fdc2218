package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotkonetworks/prax/internal/clock"
	"github.com/rotkonetworks/prax/model/transaction"
	"github.com/rotkonetworks/prax/service/approval"
)

func testPlan() *transaction.TransactionPlan {
	return &transaction.TransactionPlan{Actions: []transaction.Action{{Kind: transaction.KindSwap}}}
}

func TestRequestLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := New()

	req := &approval.Request{ID: "r1", Origin: "https://dex.example", Plan: testPlan()}
	require.NoError(t, svc.RequestApproval(ctx, req))

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "r1", pending[0].ID)

	// Undecided request reports no decision and no error.
	decision, err := svc.Decision(ctx, "r1")
	require.NoError(t, err)
	assert.Nil(t, decision)

	decision, err = svc.Decide(ctx, "r1", true, "")
	require.NoError(t, err)
	assert.True(t, decision.Approved)

	// Decided requests drop out of the pending list and cannot be decided
	// twice.
	pending, err = svc.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = svc.Decide(ctx, "r1", false, "")
	assert.Error(t, err)
}

func TestInvalidRequests(t *testing.T) {
	ctx := context.Background()
	svc := New()

	assert.Error(t, svc.RequestApproval(ctx, nil))
	assert.Error(t, svc.RequestApproval(ctx, &approval.Request{ID: "no-plan"}))

	_, err := svc.Decide(ctx, "missing", true, "")
	assert.Error(t, err)

	_, err = svc.Decision(ctx, "missing")
	assert.Error(t, err)
}

func TestRequestTTL(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	previous := clock.NowFunc
	clock.NowFunc = func() time.Time { return now }
	t.Cleanup(func() { clock.NowFunc = previous })

	ctx := context.Background()
	svc := New(WithRequestTTL(time.Minute))

	req := &approval.Request{ID: "r1", Plan: testPlan()}
	require.NoError(t, svc.RequestApproval(ctx, req))
	require.NotNil(t, req.ExpiresAt)
	assert.Equal(t, now.Add(time.Minute), *req.ExpiresAt)

	// Past the deadline the request is gone from pending and both Decision
	// and Decide treat it as failed.
	now = now.Add(2 * time.Minute)

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = svc.Decision(ctx, "r1")
	assert.Error(t, err)

	_, err = svc.Decide(ctx, "r1", true, "")
	assert.Error(t, err)
}

func TestExpiredEventPublishedOnce(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	previous := clock.NowFunc
	clock.NowFunc = func() time.Time { return now }
	t.Cleanup(func() { clock.NowFunc = previous })

	ctx := context.Background()
	svc := New(WithRequestTTL(time.Minute))

	req := &approval.Request{ID: "r1", Plan: testPlan()}
	require.NoError(t, svc.RequestApproval(ctx, req))
	now = now.Add(2 * time.Minute)

	// Repeated polls of the expired request must not fan out duplicates.
	for i := 0; i < 3; i++ {
		_, err := svc.Decision(ctx, "r1")
		assert.Error(t, err)
	}
	_, err := svc.Decide(ctx, "r1", true, "")
	assert.Error(t, err)

	msg, err := svc.Queue().Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, approval.TopicRequestCreated, msg.T().Topic)
	require.NoError(t, msg.Ack())

	msg, err = svc.Queue().Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, approval.TopicRequestExpired, msg.T().Topic)
	require.NoError(t, msg.Ack())

	waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = svc.Queue().Consume(waitCtx)
	assert.Error(t, err, "exactly one expired event expected")
}

func TestEventsPublished(t *testing.T) {
	ctx := context.Background()
	svc := New()

	req := &approval.Request{ID: "r1", Plan: testPlan()}
	require.NoError(t, svc.RequestApproval(ctx, req))
	_, err := svc.Decide(ctx, "r1", true, "")
	require.NoError(t, err)

	msg, err := svc.Queue().Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, approval.TopicRequestCreated, msg.T().Topic)
	require.NoError(t, msg.Ack())

	msg, err = svc.Queue().Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, approval.TopicDecisionCreated, msg.T().Topic)
	require.NoError(t, msg.Ack())
}
