// Package cryptox holds key-derivation helpers used by the prover to turn a
// typed password into protocol secret material.
package cryptox

import (
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
)

const saltDomain = "zkpauth/v1/"

// Argon2id cost parameters. Changing any of them changes every derived
// secret, so registered users would no longer be able to log in.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// UsernameSalt returns the deterministic salt for a given username.
// The verifier stores no salt, so the prover must be able to recompute it.
func UsernameSalt(username string) []byte {
	h := sha256.Sum256([]byte(saltDomain + username))
	return h[:]
}

// DeriveKey stretches password with Argon2id using the supplied salt.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}
