package zkp

import "math/big"

// EncodeInt renders v as big-endian unsigned bytes, the wire form of every
// group element and exponent. Zero encodes as an empty slice.
func EncodeInt(v *big.Int) []byte {
	if v == nil {
		return nil
	}
	return v.Bytes()
}

// DecodeInt is the inverse of EncodeInt.
func DecodeInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}
