// Package prover runs the prover's half of the Chaum-Pedersen exchange:
// registration of (y1, y2) and the commit/challenge/response login that
// yields a session id. It keeps no state between calls.
package prover

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/dmitrijs2005/zkpauth/internal/client/client"
	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

var ErrEmptyUsername = errors.New("username must not be empty")

type Prover struct {
	client client.Client
	params *zkp.Params
	rand   io.Reader
}

// New returns a prover talking to c. A nil reader means crypto/rand.
func New(c client.Client, params *zkp.Params, r io.Reader) *Prover {
	if r == nil {
		r = rand.Reader
	}
	return &Prover{client: c, params: params, rand: r}
}

// Register publishes alpha^x and beta^x for username.
func (p *Prover) Register(ctx context.Context, username string, x *big.Int) error {
	if username == "" {
		return ErrEmptyUsername
	}

	y1, y2 := p.params.PublicValues(x)
	if err := p.client.Register(ctx, username, y1, y2); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Authenticate proves knowledge of x and returns the session id.
func (p *Prover) Authenticate(ctx context.Context, username string, x *big.Int) (string, error) {
	if username == "" {
		return "", ErrEmptyUsername
	}

	k, err := p.params.RandomExponent(p.rand)
	if err != nil {
		return "", err
	}
	defer common.WipeInt(k)

	r1, r2 := p.params.PublicValues(k)

	ch, err := p.client.CreateChallenge(ctx, username, r1, r2)
	if err != nil {
		return "", fmt.Errorf("challenge: %w", err)
	}

	s := p.params.Solve(k, ch.C, x)

	sessionID, err := p.client.VerifyAuthentication(ctx, ch.AuthID, s)
	if err != nil {
		return "", fmt.Errorf("verify: %w", err)
	}
	return sessionID, nil
}

// RegisterPassword derives x from the credentials and registers it.
func (p *Prover) RegisterPassword(ctx context.Context, username string, password []byte) error {
	x := p.params.DeriveSecret(username, password)
	defer common.WipeInt(x)

	return p.Register(ctx, username, x)
}

// AuthenticatePassword derives x from the credentials and logs in with it.
func (p *Prover) AuthenticatePassword(ctx context.Context, username string, password []byte) (string, error) {
	x := p.params.DeriveSecret(username, password)
	defer common.WipeInt(x)

	return p.Authenticate(ctx, username, x)
}
