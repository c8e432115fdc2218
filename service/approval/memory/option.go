package memory

import "time"

// Option customizes the in-memory approval service.
type Option func(*service)

// WithRequestTTL bounds how long a request stays decidable. A request left
// undecided past the deadline behaves as an approval-channel failure for the
// caller awaiting it: Decision and Decide both error and an expired event is
// published.
func WithRequestTTL(ttl time.Duration) Option {
	return func(s *service) { s.requestTTL = ttl.Milliseconds() }
}

func millis(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
