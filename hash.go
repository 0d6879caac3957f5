package dict

import "math/bits"

const hashSeed = 17

// Hash computes the 64-bit hash used to place key in a Table.
//
// Each byte is widened as a signed 8-bit value, so keys containing bytes
// above 0x7f hash the same way they did in tables built from signed chars.
func Hash(key string) uint64 {
	hash := uint64(hashSeed)
	for i := 0; i < len(key); i++ {
		c := uint64(int64(int8(key[i])))
		hash *= c<<1 + 1 // always odd, never zero
		hash = bits.RotateLeft64(hash, 7)
		hash ^= c
	}
	return hash
}
