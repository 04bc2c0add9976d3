package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/server/auth"
	"github.com/dmitrijs2005/zkpauth/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_DefaultsUseRandomSigningKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	a, err := NewApp(cfg)
	require.NoError(t, err)
	require.NotNil(t, a.verifier)
	assert.Equal(t, cfg, a.config)

	b, err := NewApp(cfg)
	require.NoError(t, err)

	token, err := a.sessions.Issue("alice")
	require.NoError(t, err)

	user, err := a.sessions.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", user)

	_, err = b.sessions.Parse(token)
	assert.ErrorIs(t, err, common.ErrInvalidToken, "two default servers must not share a key")

	forged, err := auth.NewSessionIssuer([]byte("secretKey"), time.Hour, nil).Issue("alice")
	require.NoError(t, err)
	_, err = a.sessions.Parse(forged)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestNewApp_ConfiguredSigningKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "configured"

	app, err := NewApp(cfg)
	require.NoError(t, err)

	token, err := auth.NewSessionIssuer([]byte("configured"), time.Hour, nil).Issue("bob")
	require.NoError(t, err)

	user, err := app.sessions.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "bob", user)
}

func TestApp_Run_StopsOnCancel(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.EndpointAddrGRPC = "127.0.0.1:0"

	app, err := NewApp(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestApp_Run_BadAddressReturns(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.EndpointAddrGRPC = l.Addr().String()

	app, err := NewApp(cfg)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not return on listen failure")
	}
}
