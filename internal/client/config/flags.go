package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/flagx"
)

var (
	flagArgs       = []string{"-a", "-t"}
	configFileArgs = []string{"-c", "-config"}
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the verifier (default from Config)
//	-t int      request timeout in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], flagArgs)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}

// Args returns args without the configuration flags and their values.
func Args(args []string) []string {
	return flagx.DropArgs(args, append(append([]string{}, flagArgs...), configFileArgs...))
}
