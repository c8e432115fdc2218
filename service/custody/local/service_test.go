package local

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotkonetworks/prax/model/transaction"
)

func testSeed() []byte {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}
	return seed
}

func testPlan() *transaction.TransactionPlan {
	return &transaction.TransactionPlan{Actions: []transaction.Action{
		{Kind: transaction.KindSpend, Spend: &transaction.SpendPlan{
			Note: &transaction.Note{Value: &transaction.Value{Amount: transaction.NewAmount(100, 0)}},
		}},
		{Kind: transaction.KindSwap},
		{Kind: transaction.KindSpend, Spend: &transaction.SpendPlan{
			Note: &transaction.Note{Value: &transaction.Value{Amount: transaction.NewAmount(7, 0)}},
		}},
	}}
}

func TestAuthorizePlan(t *testing.T) {
	ctx := context.Background()
	svc := New(WithSeed(testSeed()))

	data, err := svc.AuthorizePlan(ctx, testPlan())
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Len(t, data.EffectHash, 32)

	// One spend-auth signature per spend action, each verifying against
	// the service public key.
	require.Len(t, data.SpendAuths, 2)
	publicKey, err := svc.PublicKey(ctx)
	require.NoError(t, err)
	for _, sig := range data.SpendAuths {
		assert.True(t, ed25519.Verify(publicKey, data.EffectHash, sig))
	}
}

func TestAuthorizePlanDeterministicEffectHash(t *testing.T) {
	ctx := context.Background()
	svc := New(WithSeed(testSeed()))

	first, err := svc.AuthorizePlan(ctx, testPlan())
	require.NoError(t, err)
	second, err := svc.AuthorizePlan(ctx, testPlan())
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first.EffectHash, second.EffectHash))

	other, err := svc.AuthorizePlan(ctx, &transaction.TransactionPlan{
		Actions: []transaction.Action{{Kind: transaction.KindSwap}},
	})
	require.NoError(t, err)
	assert.False(t, bytes.Equal(first.EffectHash, other.EffectHash))
}

func TestAuthorizePlanWithoutKey(t *testing.T) {
	svc := New()
	_, err := svc.AuthorizePlan(context.Background(), testPlan())
	assert.Error(t, err)
}

func TestAuthorizePlanNilPlan(t *testing.T) {
	svc := New(WithSeed(testSeed()))
	_, err := svc.AuthorizePlan(context.Background(), nil)
	assert.Error(t, err)
}
