package zkp

import "math/big"

// Exponentiate returns base^exponent mod P.
func (p *Params) Exponentiate(base, exponent *big.Int) *big.Int {
	return new(big.Int).Exp(base, exponent, p.P)
}

// Solve computes the response s = k - c*x mod Q.
//
// The values are treated as unsigned: when c*x exceeds k the difference is
// taken the other way round and subtracted from Q. The result is in [0, Q).
func (p *Params) Solve(k, c, x *big.Int) *big.Int {
	cx := new(big.Int).Mul(c, x)

	if k.Cmp(cx) >= 0 {
		s := new(big.Int).Sub(k, cx)
		return s.Mod(s, p.Q)
	}

	d := new(big.Int).Sub(cx, k)
	d.Mod(d, p.Q)
	s := d.Sub(p.Q, d)
	// c*x - k may be a multiple of Q, in which case Q - 0 must fold to 0.
	return s.Mod(s, p.Q)
}

// Verify reports whether s answers challenge c for commitments (r1, r2)
// against the public values (y1, y2). Both equations must hold:
//
//	r1 = alpha^s * y1^c mod P
//	r2 = beta^s  * y2^c mod P
func (p *Params) Verify(r1, r2, y1, y2, c, s *big.Int) bool {
	cond1 := r1.Cmp(p.combine(p.Alpha, s, y1, c)) == 0
	cond2 := r2.Cmp(p.combine(p.Beta, s, y2, c)) == 0
	return cond1 && cond2
}

func (p *Params) combine(g, s, y, c *big.Int) *big.Int {
	gs := new(big.Int).Exp(g, s, p.P)
	yc := new(big.Int).Exp(y, c, p.P)
	gs.Mul(gs, yc)
	return gs.Mod(gs, p.P)
}

// PublicValues returns (alpha^x, beta^x), the pair a prover registers.
func (p *Params) PublicValues(x *big.Int) (*big.Int, *big.Int) {
	return p.Exponentiate(p.Alpha, x), p.Exponentiate(p.Beta, x)
}
