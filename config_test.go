package prax

import (
	"context"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	type testCase struct {
		name        string
		config      *Config
		expectError bool
	}

	tests := []testCase{{
		name:   "defaults are valid",
		config: DefaultConfig(),
	}, {
		name:   "nil config is valid",
		config: nil,
	}, {
		name:        "negative request ttl",
		config:      &Config{Approval: ApprovalConfig{RequestTTLSec: -1}},
		expectError: true,
	}, {
		name:        "negative decision timeout",
		config:      &Config{Approval: ApprovalConfig{DecisionTimeoutSec: -5}},
		expectError: true,
	}, {
		name:        "secret key without secret url",
		config:      &Config{Custody: CustodyConfig{SecretKey: "blowfish://default"}},
		expectError: true,
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "prax-config")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	location := path.Join(tempDir, "config.yaml")
	content := `
storage:
  baseURL: file:///var/lib/prax
approval:
  requestTTLSec: 300
  decisionTimeoutSec: 120
tracing:
  enabled: true
  serviceName: prax-wallet
`
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))

	config, err := LoadConfig(context.Background(), location)
	require.NoError(t, err)
	assert.Equal(t, "file:///var/lib/prax", config.Storage.BaseURL)
	assert.Equal(t, 300, config.Approval.RequestTTLSec)
	assert.Equal(t, 120, config.Approval.DecisionTimeoutSec)
	assert.True(t, config.Tracing.Enabled)
	assert.Equal(t, "prax-wallet", config.Tracing.ServiceName)
	// Untouched fields keep their defaults.
	assert.Equal(t, "dev", config.Tracing.ServiceVersion)

	_, err = LoadConfig(context.Background(), path.Join(tempDir, "missing.yaml"))
	assert.Error(t, err)
}
