// Package server wires the verifier together and runs it: configuration,
// the in-memory user store, session token issuing, the gRPC endpoint and
// graceful shutdown on SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/logging"
	"github.com/dmitrijs2005/zkpauth/internal/server/auth"
	"github.com/dmitrijs2005/zkpauth/internal/server/config"
	"github.com/dmitrijs2005/zkpauth/internal/server/store"
	"github.com/dmitrijs2005/zkpauth/internal/server/verifier"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"

	gs "github.com/dmitrijs2005/zkpauth/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	verifier *verifier.Service
	sessions *auth.SessionIssuer
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	secret := c.SecretKey
	if secret == "" {
		s, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("secret key generation error: %w", err)
		}
		secret = s
		logger.Warn(context.Background(), "no secret key configured, using a random one")
	}

	sessions := auth.NewSessionIssuer([]byte(secret), c.SessionTokenValidityDuration, nil)

	opts := verifier.Options{
		SingleUseChallenges:  c.SingleUseChallenges,
		ValidatePublicValues: c.ValidatePublicValues,
	}
	if c.RejectReRegistration {
		opts.Registration = verifier.RegistrationReject
	}

	v, err := verifier.NewService(zkp.DefaultParams(), store.NewMemoryStore(), sessions, opts)
	if err != nil {
		return nil, fmt.Errorf("verifier init error: %w", err)
	}

	return &App{config: c, logger: logger, verifier: v, sessions: sessions}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.verifier)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...",
		"address", app.config.EndpointAddrGRPC,
		"single_use_challenges", app.config.SingleUseChallenges,
		"reject_reregistration", app.config.RejectReRegistration,
		"validate_public_values", app.config.ValidatePublicValues)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
}
