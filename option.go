package prax

import (
	"github.com/viant/afs"

	"github.com/rotkonetworks/prax/service/approval"
	"github.com/rotkonetworks/prax/service/custody"
	"github.com/rotkonetworks/prax/service/dao"
	"github.com/rotkonetworks/prax/tradingmode"
)

// Option customizes the engine Service.
type Option func(s *Service)

// WithConfig replaces the default configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithCustodyService sets the signing collaborator.
func WithCustodyService(svc custody.Service) Option {
	return func(s *Service) { s.custody = svc }
}

// WithApprovalService sets the interactive-approval collaborator.
func WithApprovalService(svc approval.Service) Option {
	return func(s *Service) { s.approvals = svc }
}

// WithSettingsDAO sets the trading-mode settings store.
func WithSettingsDAO(store dao.Service[string, tradingmode.Settings]) Option {
	return func(s *Service) { s.settingsDAO = store }
}

// WithAFS sets the abstract file-storage service used for fs-backed
// settings persistence.
func WithAFS(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}
