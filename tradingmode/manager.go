package tradingmode

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"sync"
	"time"

	"github.com/rotkonetworks/prax/internal/clock"
	"github.com/rotkonetworks/prax/service/dao"
)

// Manager owns all mutation of the trading-mode settings record. Every
// operation is read-modify-write under one lock and persists the complete
// record, so concurrent readers observe either the old or the new settings
// but never a mix.
type Manager struct {
	mu  sync.Mutex
	dao dao.Service[string, Settings]
}

// New creates a Manager backed by the supplied settings store.
func New(store dao.Service[string, Settings]) *Manager {
	return &Manager{dao: store}
}

// Settings returns a snapshot of the current record. A missing record (first
// use, or storage cleared) yields the documented defaults. A record whose
// ExpiresAt already passed is returned as-is; expiry is evaluated at
// decision time, not rewritten on load.
func (m *Manager) Settings(ctx context.Context) (*Settings, error) {
	current, err := m.dao.Load(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return DefaultSettings(), nil
		}
		return nil, err
	}
	return m.normalize(current), nil
}

// SetAutoSign flips the master switch. Disabling also ends any running
// session in the same persisted write, so the two changes are never
// observably decoupled.
func (m *Manager) SetAutoSign(ctx context.Context, enabled bool) error {
	return m.update(ctx, func(s *Settings) error {
		s.AutoSign = enabled
		if !enabled {
			s.ExpiresAt = 0
		}
		return nil
	})
}

// AddAllowedOrigin whitelists origin, preserving insertion order and
// ignoring duplicates.
func (m *Manager) AddAllowedOrigin(ctx context.Context, origin string) error {
	if origin == "" {
		return fmt.Errorf("tradingmode: empty origin")
	}
	return m.update(ctx, func(s *Settings) error {
		if !slices.Contains(s.AllowedOrigins, origin) {
			s.AllowedOrigins = append(s.AllowedOrigins, origin)
		}
		return nil
	})
}

// RemoveAllowedOrigin drops origin from the whitelist; removing an absent
// origin is a no-op.
func (m *Manager) RemoveAllowedOrigin(ctx context.Context, origin string) error {
	return m.update(ctx, func(s *Settings) error {
		if idx := slices.Index(s.AllowedOrigins, origin); idx >= 0 {
			s.AllowedOrigins = slices.Delete(s.AllowedOrigins, idx, idx+1)
		}
		return nil
	})
}

// SetSessionDuration stores the session length, clamped to
// [MinSessionMinutes, MaxSessionMinutes].
func (m *Manager) SetSessionDuration(ctx context.Context, minutes int) error {
	return m.update(ctx, func(s *Settings) error {
		s.SessionDurationMinutes = ClampDuration(minutes)
		return nil
	})
}

// SetMaxValuePerSwap stores the per-transaction value cap. The value must be
// a non-negative decimal integer string; "0" or "" means unlimited.
func (m *Manager) SetMaxValuePerSwap(ctx context.Context, value string) error {
	if value == "" {
		value = "0"
	}
	if v, ok := new(big.Int).SetString(value, 10); !ok || v.Sign() < 0 {
		return fmt.Errorf("tradingmode: max value per swap %q is not a non-negative integer", value)
	}
	return m.update(ctx, func(s *Settings) error {
		s.MaxValuePerSwap = value
		return nil
	})
}

// StartSession opens a new trading session expiring sessionDurationMinutes
// from now. It does not require AutoSign to be set; an inactive switch just
// keeps the session ineffective.
func (m *Manager) StartSession(ctx context.Context) error {
	return m.update(ctx, func(s *Settings) error {
		duration := time.Duration(ClampDuration(s.SessionDurationMinutes)) * time.Minute
		s.ExpiresAt = clock.Now().Add(duration).UnixMilli()
		return nil
	})
}

// EndSession closes any running session.
func (m *Manager) EndSession(ctx context.Context) error {
	return m.update(ctx, func(s *Settings) error {
		s.ExpiresAt = 0
		return nil
	})
}

// IsSessionActive recomputes the activity predicate against the wall clock
// on every call: auto-sign enabled, at least one origin whitelisted and the
// session deadline strictly in the future.
func (m *Manager) IsSessionActive(ctx context.Context) (bool, error) {
	s, err := m.Settings(ctx)
	if err != nil {
		return false, err
	}
	return s.AutoSign && len(s.AllowedOrigins) > 0 && s.ExpiresAt > clock.Now().UnixMilli(), nil
}

// update applies fn to the current record and persists the full replacement.
func (m *Manager) update(ctx context.Context, fn func(*Settings) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, err := m.Settings(ctx)
	if err != nil {
		return err
	}
	if err = fn(current); err != nil {
		return err
	}
	return m.dao.Save(ctx, current)
}

// normalize repairs fields a hand-edited or legacy record may carry so the
// rest of the engine can rely on record validity.
func (m *Manager) normalize(s *Settings) *Settings {
	ret := s.Clone()
	if ret.AllowedOrigins == nil {
		ret.AllowedOrigins = []string{}
	}
	ret.SessionDurationMinutes = ClampDuration(ret.SessionDurationMinutes)
	if ret.MaxValuePerSwap == "" {
		ret.MaxValuePerSwap = "0"
	}
	return ret
}
