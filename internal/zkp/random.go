package zkp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

var ErrRandomSource = errors.New("random source failure")

// RandomBelow draws a uniformly distributed integer in [0, bound) from r.
// A nil reader falls back to crypto/rand.
func RandomBelow(r io.Reader, bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Sign() <= 0 {
		return nil, fmt.Errorf("%w: bound must be positive", ErrRandomSource)
	}
	if r == nil {
		r = rand.Reader
	}

	v, err := rand.Int(r, bound)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return v, nil
}

// RandomExponent draws a fresh value in [0, Q), used for both the prover's
// commitment nonce k and the verifier's challenge c.
func (p *Params) RandomExponent(r io.Reader) (*big.Int, error) {
	return RandomBelow(r, p.Q)
}
