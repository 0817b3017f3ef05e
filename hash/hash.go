// Package hash implements the fast modular hash used for pattern fingerprints
package hash

// Hash mixes n with salt s and reduces the result to the range 0 to max-1.
// A max of 0 yields 0.
func Hash(n uint32, s uint32, max uint32) uint32 {
	// mixing stage, mix input with salt using subtraction
	var m = uint32(n) - uint32(s)

	// hashing stage, use xor shift with prime coefficients
	m ^= m << 2
	m ^= m << 3
	m ^= m >> 5
	m ^= m >> 7
	m ^= m << 11
	m ^= m << 13
	m ^= m >> 17
	m ^= m << 19

	// mixing stage 2, mix input with salt using addition
	m += s

	// modular stage, multiply shift trick by Daniel Lemire
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
	return uint32((uint64(m) * uint64(max)) >> 32)
}

// Fold reduces a sequence of words into a single fingerprint. Every word is
// hashed with its position as salt, and the results are chained starting from
// seed.
func Fold(seed uint32, words []uint32) uint32 {
	var salt = make([]uint32, len(words))
	var out = make([]uint32, len(words))
	for i := range salt {
		salt[i] = uint32(i)
	}
	HashVectorized(out, words, salt, 0xFFFFFFFF)
	var acc = seed
	for i, v := range out {
		acc = Hash(acc^v, uint32(i), 0xFFFFFFFF)
	}
	return acc
}
