package zkp

import (
	"math/big"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/cryptox"
)

// DeriveSecret maps a username/password pair to the prover's secret x in
// [0, Q). The same inputs always produce the same x.
func (p *Params) DeriveSecret(username string, password []byte) *big.Int {
	key := cryptox.DeriveKey(password, cryptox.UsernameSalt(username))
	defer common.WipeByteArray(key)

	x := new(big.Int).SetBytes(key)
	return x.Mod(x, p.Q)
}
