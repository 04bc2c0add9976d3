package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "127.0.0.1:9090", "-s", "secret", "-t", "5", "-single-use", "-reject-reregister", "-validate-public"},
			expected: &Config{
				EndpointAddrGRPC:             "127.0.0.1:9090",
				SecretKey:                    "secret",
				SessionTokenValidityDuration: 5 * time.Minute,
				SingleUseChallenges:          true,
				RejectReRegistration:         true,
				ValidatePublicValues:         true,
			},
		},
		{
			name: "unrelated flags ignored",
			args: []string{"cmd", "-c", "cfg.json", "-a", ":7000"},
			expected: &Config{
				EndpointAddrGRPC: ":7000",
			},
		},
		{
			name: "explicit false",
			args: []string{"cmd", "-single-use=false"},
			expected: &Config{
				SingleUseChallenges: false,
			},
		},
		{
			name:        "bad minutes",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
