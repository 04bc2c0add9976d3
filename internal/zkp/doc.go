// Package zkp implements the Chaum-Pedersen proof of discrete-logarithm
// equality over a prime-order subgroup of the multiplicative group mod p.
//
// A prover holding x publishes y1 = alpha^x and y2 = beta^x. To authenticate
// it commits to r1 = alpha^k, r2 = beta^k for a fresh random k, receives a
// challenge c from the verifier and answers with s = k - c*x mod q. The
// verifier accepts iff r1 = alpha^s * y1^c and r2 = beta^s * y2^c (mod p).
//
// All arithmetic is done on *big.Int values. Functions never mutate their
// arguments and always return freshly allocated results.
package zkp
