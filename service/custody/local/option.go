package local

import (
	"crypto/ed25519"
	"time"
)

// Option customizes the local custody service.
type Option func(*Service)

// WithSeed derives the signing key from a raw ed25519 seed.
func WithSeed(seed []byte) Option {
	return func(s *Service) { s.key = ed25519.NewKeyFromSeed(seed) }
}

// WithKey sets the signing key directly.
func WithKey(key ed25519.PrivateKey) Option {
	return func(s *Service) { s.key = key }
}

// WithSecretURL defers key material to an scy-encrypted secret, e.g.
// ("file:///etc/prax/seed.enc", "blowfish://default"). The secret plaintext
// must be a hex-encoded 32-byte seed.
func WithSecretURL(sourceURL, key string) Option {
	return func(s *Service) {
		s.secretURL = sourceURL
		s.secretKey = key
	}
}

// WithLatency delays every signing call, modelling a slow device. Intended
// for tests exercising the signing/approval race.
func WithLatency(latency time.Duration) Option {
	return func(s *Service) { s.latency = latency }
}
