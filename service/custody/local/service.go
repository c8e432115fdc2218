// Package local implements a software custody backend: the effect hash is a
// BLAKE2b digest over the canonical plan encoding and each spend receives an
// ed25519 authorization signature. The signing seed is supplied directly or
// loaded once from an encrypted secret via viant/scy.
package local

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/viant/scy"
	"golang.org/x/crypto/blake2b"

	"github.com/rotkonetworks/prax/model/transaction"
	"github.com/rotkonetworks/prax/service/custody"
)

// Service is a local signer holding a single spend-authorization key.
type Service struct {
	key     ed25519.PrivateKey
	latency time.Duration

	secretURL string
	secretKey string
	secrets   *scy.Service

	once    sync.Once
	initErr error
}

var _ custody.Service = (*Service)(nil)

// New creates a local custody service. Provide the key with WithSeed or
// defer loading with WithSecretURL.
func New(options ...Option) *Service {
	ret := &Service{secrets: scy.New()}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// AuthorizePlan signs the plan. Signing is purely computational here: no
// nonce is consumed and no external state changes, so speculative signing
// ahead of the policy decision is safe with this backend.
func (s *Service) AuthorizePlan(ctx context.Context, plan *transaction.TransactionPlan) (*transaction.AuthorizationData, error) {
	if plan == nil {
		return nil, fmt.Errorf("custody: nil plan")
	}
	if err := s.ensureKey(ctx); err != nil {
		return nil, err
	}
	if s.latency > 0 {
		select {
		case <-time.After(s.latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	data, err := plan.MarshalCanonical()
	if err != nil {
		return nil, fmt.Errorf("custody: failed to encode plan: %w", err)
	}
	effectHash := blake2b.Sum256(data)

	ret := &transaction.AuthorizationData{EffectHash: effectHash[:]}
	for i := range plan.Actions {
		if plan.Actions[i].Kind == transaction.KindSpend {
			ret.SpendAuths = append(ret.SpendAuths, ed25519.Sign(s.key, effectHash[:]))
		}
	}
	return ret, nil
}

// PublicKey exposes the verification key for the spend-auth signatures.
func (s *Service) PublicKey(ctx context.Context) (ed25519.PublicKey, error) {
	if err := s.ensureKey(ctx); err != nil {
		return nil, err
	}
	return s.key.Public().(ed25519.PublicKey), nil
}

// ensureKey resolves the signing key on first use. The scy path expects the
// secret plaintext to be a hex-encoded 32-byte seed.
func (s *Service) ensureKey(ctx context.Context) error {
	s.once.Do(func() {
		if s.key != nil {
			return
		}
		if s.secretURL == "" {
			s.initErr = fmt.Errorf("custody: no signing key configured")
			return
		}
		resource := scy.NewResource(nil, s.secretURL, s.secretKey)
		secret, err := s.secrets.Load(ctx, resource)
		if err != nil {
			s.initErr = fmt.Errorf("custody: failed to load signing seed from %s: %w", s.secretURL, err)
			return
		}
		seed, err := hex.DecodeString(secret.String())
		if err != nil || len(seed) != ed25519.SeedSize {
			s.initErr = fmt.Errorf("custody: secret at %s is not a hex-encoded %d-byte seed", s.secretURL, ed25519.SeedSize)
			return
		}
		s.key = ed25519.NewKeyFromSeed(seed)
	})
	return s.initErr
}
