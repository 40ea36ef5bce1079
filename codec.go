package ascon

// loadBytes reads up to 8 bytes from b and returns a 64-bit lane whose
// most-significant byte is b[0] (spec §4.2 LOAD). Only n bytes of b are
// read; the remaining low-order bytes of the result are zero. n must be in [0,8] and len(b) must be >= n.
func loadBytes(b []byte, n int) uint64 {
	var x uint64
	for i := 0; i < n; i++ {
		x |= uint64(b[i]) << uint(56-8*i)
	}
	return x
}

// storeBytes writes the top n bytes of x's big-endian projection into
// b[0:n] (spec §4.2 STORE). n must be in [0,8] and len(b) must be >= n.
func storeBytes(b []byte, x uint64, n int) {
	for i := 0; i < n; i++ {
		b[i] = byte(x >> uint(56-8*i))
	}
}

// pad returns a lane whose byte at offset i (big-endian projection) is
// 0x80 and all other bytes are zero, for i in [0,8) (spec §4.2 PAD).
func pad(i int) uint64 {
	return uint64(0x80) << uint(56-8*i)
}

// clearTop zeroes the high i bytes of x's big-endian projection, used
// when reconstructing AEAD decryption's tail block (spec §4.2 CLEAR).
func clearTop(x uint64, i int) uint64 {
	switch {
	case i <= 0:
		return x
	case i >= 8:
		return 0
	default:
		return x & (^uint64(0) >> uint(8*i))
	}
}
