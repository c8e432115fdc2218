package prax

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the engine configuration. It
// can be populated from YAML or JSON; the zero value is useful - all nested
// fields inherit their package defaults.
type Config struct {
	Storage  StorageConfig  `json:"storage" yaml:"storage"`
	Approval ApprovalConfig `json:"approval" yaml:"approval"`
	Custody  CustodyConfig  `json:"custody" yaml:"custody"`
	Tracing  TracingConfig  `json:"tracing" yaml:"tracing"`
}

// StorageConfig selects where the trading-mode settings record lives.
type StorageConfig struct {
	// BaseURL is an afs location (file:///..., mem://..., s3://...); empty
	// keeps settings in process memory.
	BaseURL string `json:"baseURL,omitempty" yaml:"baseURL,omitempty"`
}

// ApprovalConfig tunes the interactive-approval collaborator.
type ApprovalConfig struct {
	// RequestTTLSec bounds how long a pending request stays decidable;
	// 0 means no deadline.
	RequestTTLSec int `json:"requestTTLSec,omitempty" yaml:"requestTTLSec,omitempty"`

	// DecisionTimeoutSec bounds how long Authorize awaits a decision;
	// 0 waits until the request context is done.
	DecisionTimeoutSec int `json:"decisionTimeoutSec,omitempty" yaml:"decisionTimeoutSec,omitempty"`
}

// CustodyConfig configures the default local signer when no custody service
// is injected.
type CustodyConfig struct {
	// SecretURL points at an scy-encrypted hex-encoded signing seed.
	SecretURL string `json:"secretURL,omitempty" yaml:"secretURL,omitempty"`
	// SecretKey is the scy decryption key spec, e.g. "blowfish://default".
	SecretKey string `json:"secretKey,omitempty" yaml:"secretKey,omitempty"`
}

// TracingConfig enables OpenTelemetry span export.
type TracingConfig struct {
	Enabled        bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	ServiceName    string `json:"serviceName,omitempty" yaml:"serviceName,omitempty"`
	ServiceVersion string `json:"serviceVersion,omitempty" yaml:"serviceVersion,omitempty"`
	OutputFile     string `json:"outputFile,omitempty" yaml:"outputFile,omitempty"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		Tracing: TracingConfig{
			ServiceName:    "prax",
			ServiceVersion: "dev",
		},
	}
}

// Validate returns an error describing invalid settings, or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Approval.RequestTTLSec < 0 {
		return fmt.Errorf("approval.requestTTLSec must be >= 0")
	}
	if c.Approval.DecisionTimeoutSec < 0 {
		return fmt.Errorf("approval.decisionTimeoutSec must be >= 0")
	}
	if c.Custody.SecretURL == "" && c.Custody.SecretKey != "" {
		return fmt.Errorf("custody.secretKey set without custody.secretURL")
	}
	return nil
}

// LoadConfig reads a YAML configuration from any afs-supported URL and
// overlays it on the defaults.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
	}
	config := DefaultConfig()
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", URL, err)
	}
	if err = config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return config, nil
}
