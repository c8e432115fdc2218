// Package fs persists the trading-mode settings record as a JSON document on
// any storage scheme supported by viant/afs (file, mem, s3, gs, ...). The
// record is uploaded wholesale on every save, matching the replace-not-patch
// storage contract.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"github.com/rotkonetworks/prax/service/dao"
	"github.com/rotkonetworks/prax/tradingmode"
)

// Service implements dao.Service for the settings record on top of afs.
type Service struct {
	baseURL string
	fs      afs.Service
	mu      sync.RWMutex
}

var _ dao.Service[string, tradingmode.Settings] = (*Service)(nil)

// New creates a settings store rooted at baseURL.
func New(fsService afs.Service, baseURL string) *Service {
	if fsService == nil {
		fsService = afs.New()
	}
	return &Service{fs: fsService, baseURL: baseURL}
}

// Save uploads the complete settings record.
func (s *Service) Save(ctx context.Context, settings *tradingmode.Settings) error {
	if settings == nil {
		return dao.ErrNilEntity
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	location := s.recordURL(tradingmode.StorageKey)
	if err = s.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save settings to %s: %w", location, err)
	}
	return nil
}

// Load reads the record for key; an absent record maps to dao.ErrNotFound so
// callers can substitute defaults.
func (s *Service) Load(ctx context.Context, key string) (*tradingmode.Settings, error) {
	if key == "" {
		return nil, dao.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	location := s.recordURL(key)
	exists, err := s.fs.Exists(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to check settings record %s: %w", location, err)
	}
	if !exists {
		return nil, dao.ErrNotFound
	}
	data, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings record %s: %w", location, err)
	}
	settings := &tradingmode.Settings{}
	if err = json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings record %s: %w", location, err)
	}
	return settings, nil
}

// Delete removes the record for key.
func (s *Service) Delete(ctx context.Context, key string) error {
	if key == "" {
		return dao.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	location := s.recordURL(key)
	exists, err := s.fs.Exists(ctx, location)
	if err != nil {
		return fmt.Errorf("failed to check settings record %s: %w", location, err)
	}
	if !exists {
		return dao.ErrNotFound
	}
	return s.fs.Delete(ctx, location)
}

// List returns the singleton record when present.
func (s *Service) List(ctx context.Context) ([]*tradingmode.Settings, error) {
	settings, err := s.Load(ctx, tradingmode.StorageKey)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return []*tradingmode.Settings{settings}, nil
}

func (s *Service) recordURL(key string) string {
	return url.Join(s.baseURL, key+".json")
}
