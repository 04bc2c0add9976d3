package zkp

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
)

// RFC 5114 section 2.1: 1024-bit MODP group with 160-bit prime order subgroup.
const (
	hexP     = "B10B8F96A080E01DDE92DE5EAE5D54EC52C99FBCFB06A3C69A6A9DCA52D23B616073E28675A23D189838EF1E2EE652C013ECB4AEA906112324975C3CD49B83BFACCBDD7D90C4BD7098488E9C219A73724EFFD6FAE5644738FAA31A4FF55BCCC0A151AF5F0DC8B4BD45BF37DF365C1A65E68CFDA76D4DA708DF1FB2BC2E4A4371"
	hexQ     = "F518AA8781A8DF278ABA4E7D64B7CB9D49462353"
	hexAlpha = "A4D1CBD5C3FD34126765A442EFB99905F8104DD258AC507FD6406CFF14266D31266FEA1E5C41564B777E690F5504F213160217B4B01B886A5E91547F9E2749F4D7FBD7D3B9A92EE1909D0D2263F80A76A6A24C087A091F531DBF0A0169B6A28AD662A4D18E73AFA32D779D5918D08BC8858F4DCEF97C2A24855E6EEB22B3B2E5"
	// beta = alpha^betaExp mod p
	hexBetaExp = "266FEA1E5C41564B777E69"
)

var (
	ErrInvalidParams = errors.New("invalid group parameters")
)

// Params is the fixed algebraic domain shared by prover and verifier.
// Both sides must use byte-identical values; nothing is negotiated.
type Params struct {
	P     *big.Int // prime modulus
	Q     *big.Int // prime order of the subgroup, divides P-1
	Alpha *big.Int // generator of the order-Q subgroup
	Beta  *big.Int // second generator of the same subgroup
}

var defaultParams = mustDefaultParams()

func mustDefaultParams() *Params {
	p := mustHex(hexP)
	alpha := mustHex(hexAlpha)
	beta := new(big.Int).Exp(alpha, mustHex(hexBetaExp), p)

	params := &Params{P: p, Q: mustHex(hexQ), Alpha: alpha, Beta: beta}
	if err := params.Validate(); err != nil {
		panic(err)
	}
	return params
}

func mustHex(s string) *big.Int {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return new(big.Int).SetBytes(b)
}

// DefaultParams returns a copy of the production group, so callers may not
// alter the values the rest of the process relies on.
func DefaultParams() *Params {
	return defaultParams.Clone()
}

// ToyParams returns the small group p=23, q=11, alpha=4, beta=6.
// It is only suitable for tests and worked examples.
func ToyParams() *Params {
	return &Params{
		P:     big.NewInt(23),
		Q:     big.NewInt(11),
		Alpha: big.NewInt(4),
		Beta:  big.NewInt(6),
	}
}

func (p *Params) Clone() *Params {
	return &Params{
		P:     new(big.Int).Set(p.P),
		Q:     new(big.Int).Set(p.Q),
		Alpha: new(big.Int).Set(p.Alpha),
		Beta:  new(big.Int).Set(p.Beta),
	}
}

// Validate checks that Q divides P-1 and that both generators are
// non-trivial elements of the order-Q subgroup.
func (p *Params) Validate() error {
	if p == nil || p.P == nil || p.Q == nil || p.Alpha == nil || p.Beta == nil {
		return fmt.Errorf("%w: missing value", ErrInvalidParams)
	}

	one := big.NewInt(1)
	if p.P.Cmp(big.NewInt(3)) < 0 || p.Q.Cmp(big.NewInt(2)) < 0 {
		return fmt.Errorf("%w: modulus or order too small", ErrInvalidParams)
	}

	pm1 := new(big.Int).Sub(p.P, one)
	if new(big.Int).Mod(pm1, p.Q).Sign() != 0 {
		return fmt.Errorf("%w: q does not divide p-1", ErrInvalidParams)
	}

	for name, g := range map[string]*big.Int{"alpha": p.Alpha, "beta": p.Beta} {
		if g.Cmp(one) <= 0 || g.Cmp(p.P) >= 0 {
			return fmt.Errorf("%w: %s out of range", ErrInvalidParams, name)
		}
		if new(big.Int).Exp(g, p.Q, p.P).Cmp(one) != 0 {
			return fmt.Errorf("%w: %s is not in the order-q subgroup", ErrInvalidParams, name)
		}
	}

	return nil
}

// InGroup reports whether v is an element of [1, P).
func (p *Params) InGroup(v *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(p.P) < 0
}
