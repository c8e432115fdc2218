// Package tradingmode holds the persisted auto-sign policy configuration and
// its session lifecycle. A trading session is a time-boxed window during
// which whitelisted origins may have swap transactions signed without
// interactive confirmation.
package tradingmode

import "slices"

// StorageKey is the single record key the settings are persisted under.
const StorageKey = "tradingMode"

// Session duration bounds, in minutes. Writes outside the range are clamped,
// never rejected, so a stored record is always valid before a session start
// reads it.
const (
	MinSessionMinutes     = 1
	MaxSessionMinutes     = 480
	DefaultSessionMinutes = 30
)

// Settings is the complete persisted policy record. It is always written
// back wholesale; partial patches would let storage be observed with some
// fields updated and others stale.
type Settings struct {
	// AutoSign is the master enable switch.
	AutoSign bool `json:"autoSign" yaml:"autoSign"`

	// AllowedOrigins lists requesting origins permitted to auto-sign, in
	// insertion order. Empty means auto-sign is unconditionally denied.
	AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`

	// SessionDurationMinutes is the length of a newly started session.
	SessionDurationMinutes int `json:"sessionDurationMinutes" yaml:"sessionDurationMinutes"`

	// ExpiresAt is the current session deadline in ms since epoch; 0 means
	// no active session.
	ExpiresAt int64 `json:"expiresAt" yaml:"expiresAt"`

	// MaxValuePerSwap caps the total spend value per transaction, in base
	// staking units, as a decimal string. "0" means unlimited.
	MaxValuePerSwap string `json:"maxValuePerSwap" yaml:"maxValuePerSwap"`
}

// DefaultSettings returns the safe first-use record: auto-sign off, no
// origins, 30 minute duration, no session, no value cap.
func DefaultSettings() *Settings {
	return &Settings{
		AutoSign:               false,
		AllowedOrigins:         []string{},
		SessionDurationMinutes: DefaultSessionMinutes,
		ExpiresAt:              0,
		MaxValuePerSwap:        "0",
	}
}

// Key selects the fixed storage key; the settings are a singleton record.
func Key(*Settings) string { return StorageKey }

// OriginAllowed reports whether origin is whitelisted.
func (s *Settings) OriginAllowed(origin string) bool {
	return s != nil && slices.Contains(s.AllowedOrigins, origin)
}

// Clone returns a deep copy safe for the caller to retain or mutate.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	ret := *s
	ret.AllowedOrigins = slices.Clone(s.AllowedOrigins)
	return &ret
}

// ClampDuration forces minutes into [MinSessionMinutes, MaxSessionMinutes].
func ClampDuration(minutes int) int {
	if minutes < MinSessionMinutes {
		return MinSessionMinutes
	}
	if minutes > MaxSessionMinutes {
		return MaxSessionMinutes
	}
	return minutes
}
