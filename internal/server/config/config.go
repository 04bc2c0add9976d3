// Package config handles configuration for the verifier server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the verifier.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - SecretKey: HMAC secret for signing session tokens (HS256). An empty
//     key makes the server generate a random one at startup.
//   - SessionTokenValidityDuration: lifetime of issued session tokens.
//   - SingleUseChallenges: retire a challenge after its first verification.
//   - RejectReRegistration: refuse Register for a known username instead of
//     overwriting its public values.
//   - ValidatePublicValues: refuse Register for an empty username or for
//     y1, y2 outside [1, p).
type Config struct {
	EndpointAddrGRPC             string
	SecretKey                    string
	SessionTokenValidityDuration time.Duration
	SingleUseChallenges          bool
	RejectReRegistration         bool
	ValidatePublicValues         bool
}

// LoadDefaults populates Config with development defaults. The secret key is
// left empty, so the server signs with a random per-process key unless one
// is configured.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.SecretKey = ""
	c.SessionTokenValidityDuration = 15 * time.Minute
	c.SingleUseChallenges = false
	c.RejectReRegistration = false
	c.ValidatePublicValues = false
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
