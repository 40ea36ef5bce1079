package ascon

import "runtime"

// zero overwrites b with zero bytes. It is used on every exit path of a
// public entry point to wipe key copies and intermediate buffers before
// they go out of scope (spec §5 Resource policy, §9 Zeroization).
//
// runtime.KeepAlive pins b past the final write so the compiler cannot
// prove the store is dead and elide it; this is the same "best effort,
// resists dead-store elimination" idiom used by real Ascon ports in the
// wild (e.g. the clearing loop on AEAD authentication failure).
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// zeroState overwrites every lane of s. Unlike zero, it operates on the
// fixed-size lane array directly so state values never need a slice
// conversion at a call site that is itself trying to avoid leaving
// secret data in a temporary.
func zeroState(s *state) {
	s[0], s[1], s[2], s[3], s[4] = 0, 0, 0, 0, 0
	runtime.KeepAlive(s)
}
