package client

import (
	"context"
	"math/big"
)

// Challenge is the verifier's reply to a commitment.
type Challenge struct {
	AuthID string
	C      *big.Int
}

type Client interface {
	Close() error
	Register(ctx context.Context, username string, y1, y2 *big.Int) error
	CreateChallenge(ctx context.Context, username string, r1, r2 *big.Int) (*Challenge, error)
	VerifyAuthentication(ctx context.Context, authID string, s *big.Int) (string, error)
}
