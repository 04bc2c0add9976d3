package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/zkpauth/internal/flagx"
	"github.com/dmitrijs2005/zkpauth/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations use timex.Duration so
// they can be written as "15m" or as integer nanoseconds. Pointer fields tell
// an explicit false apart from an absent key.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	SecretKey                    string         `json:"secret_key"`
	SessionTokenValidityDuration timex.Duration `json:"session_token_validity_duration"`
	SingleUseChallenges          *bool          `json:"single_use_challenges"`
	RejectReRegistration         *bool          `json:"reject_reregistration"`
	ValidatePublicValues         *bool          `json:"validate_public_values"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flag. Without the flag nothing is loaded. Keys missing from the
// file leave the current values untouched. Unreadable or invalid files
// panic, as startup cannot continue with a half-applied configuration.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.SessionTokenValidityDuration.Duration != 0 {
		config.SessionTokenValidityDuration = c.SessionTokenValidityDuration.Duration
	}
	if c.SingleUseChallenges != nil {
		config.SingleUseChallenges = *c.SingleUseChallenges
	}
	if c.RejectReRegistration != nil {
		config.RejectReRegistration = *c.RejectReRegistration
	}
	if c.ValidatePublicValues != nil {
		config.ValidatePublicValues = *c.ValidatePublicValues
	}
}
