package prax

import (
	"time"

	"github.com/viant/afs"

	"github.com/rotkonetworks/prax/service/approval"
	amemory "github.com/rotkonetworks/prax/service/approval/memory"
	"github.com/rotkonetworks/prax/service/custody"
	"github.com/rotkonetworks/prax/service/custody/local"
	"github.com/rotkonetworks/prax/service/dao"
	sfs "github.com/rotkonetworks/prax/service/dao/settings/fs"
	"github.com/rotkonetworks/prax/service/dao/store"
	"github.com/rotkonetworks/prax/tracing"
	"github.com/rotkonetworks/prax/tradingmode"
)

// Service is the engine façade wiring the policy, settings, custody and
// approval collaborators together.
type Service struct {
	config      *Config
	fs          afs.Service
	settingsDAO dao.Service[string, tradingmode.Settings]
	tradingMode *tradingmode.Manager
	custody     custody.Service
	approvals   approval.Service

	decisionTimeout time.Duration
}

// New creates the engine service. Without options it keeps settings in
// memory, parks approvals in an in-memory service and has no custody
// backend (every Authorize then fails its precondition check).
func New(options ...Option) *Service {
	s := &Service{config: DefaultConfig()}
	s.init(options)
	return s
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.settingsDAO == nil {
		if baseURL := s.config.Storage.BaseURL; baseURL != "" {
			s.settingsDAO = sfs.New(s.fs, baseURL)
		} else {
			s.settingsDAO = store.NewMemoryStore[string, tradingmode.Settings](tradingmode.Key)
		}
	}
	s.tradingMode = tradingmode.New(s.settingsDAO)

	if s.approvals == nil {
		var approvalOptions []amemory.Option
		if ttl := s.config.Approval.RequestTTLSec; ttl > 0 {
			approvalOptions = append(approvalOptions, amemory.WithRequestTTL(time.Duration(ttl)*time.Second))
		}
		s.approvals = amemory.New(approvalOptions...)
	}
	s.decisionTimeout = time.Duration(s.config.Approval.DecisionTimeoutSec) * time.Second

	if s.custody == nil && s.config.Custody.SecretURL != "" {
		s.custody = local.New(local.WithSecretURL(s.config.Custody.SecretURL, s.config.Custody.SecretKey))
	}
	if s.config.Tracing.Enabled {
		_ = tracing.Init(s.config.Tracing.ServiceName, s.config.Tracing.ServiceVersion, s.config.Tracing.OutputFile)
	}
}

// TradingMode exposes the session/settings manager.
func (s *Service) TradingMode() *tradingmode.Manager { return s.tradingMode }

// Approvals exposes the interactive-approval collaborator, e.g. for a UI
// that lists pending requests and records decisions.
func (s *Service) Approvals() approval.Service { return s.approvals }

// Custody exposes the signing collaborator.
func (s *Service) Custody() custody.Service { return s.custody }

// Config returns the effective configuration.
func (s *Service) Config() *Config { return s.config }
