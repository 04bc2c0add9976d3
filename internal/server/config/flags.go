package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string            gRPC bind address (e.g., ":50051")
//	-s string            session token HMAC secret key
//	-t int               session token validity, minutes
//	-single-use          retire challenges after one verification attempt
//	-reject-reregister   refuse re-registration of an existing username
//	-validate-public     refuse empty usernames and y values outside [1, p)
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, so the JSON config flag does not collide with these.
// Boolean flags must be given bare or as -flag=value.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-single-use", "-reject-reregister", "-validate-public"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "session token secret key")

	sessionTokenValidityDuration := fs.Int("t", int(config.SessionTokenValidityDuration.Minutes()), "session_token_validity_duration (in minutes)")

	fs.BoolVar(&config.SingleUseChallenges, "single-use", config.SingleUseChallenges, "retire a challenge after its first verification attempt")
	fs.BoolVar(&config.RejectReRegistration, "reject-reregister", config.RejectReRegistration, "reject registration of an existing username")
	fs.BoolVar(&config.ValidatePublicValues, "validate-public", config.ValidatePublicValues, "reject empty usernames and public values outside [1, p)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTokenValidityDuration = time.Duration(*sessionTokenValidityDuration) * time.Minute
}
