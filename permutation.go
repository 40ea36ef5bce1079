package ascon

import "math/bits"

// state is the 320-bit Ascon permutation state, held as five 64-bit
// lanes. The big-endian byte projection of state (lane 0's bytes first,
// lane 4's bytes last) is the canonical externally observable form that
// every IV, constant, and test vector in this package refers to; the
// native uint64 representation used here is an internal implementation
// detail (spec §3.1).
type state [5]uint64

// roundConstants is indexed by round index i in {0..11}; the last round
// of an r-round permutation call uses roundConstants[11], so permute
// derives its starting index as 12-r.
var roundConstants = [12]uint64{
	0xf0, 0xe1, 0xd2, 0xc3, 0xb4, 0xa5,
	0x96, 0x87, 0x78, 0x69, 0x5a, 0x4b,
}

// permute applies the Ascon permutation P for the given number of
// rounds, rounds in {1..12}. It mutates s in place and has no failure
// modes. Every step operates on all five lanes regardless of any
// secret-dependent data, so runtime is independent of the state's
// contents.
func (s *state) permute(rounds int) {
	x0, x1, x2, x3, x4 := s[0], s[1], s[2], s[3], s[4]

	for i := 12 - rounds; i < 12; i++ {
		// constant addition
		x2 ^= roundConstants[i]

		// substitution layer: bitsliced 5-bit S-box applied across the
		// five lanes, 64 bits in parallel. A table-driven S-box is not
		// used here because lookup tables indexed by secret data are
		// not constant time.
		x0 ^= x4
		x4 ^= x3
		x2 ^= x1
		t0 := (^x0) & x1
		t1 := (^x1) & x2
		t2 := (^x2) & x3
		t3 := (^x3) & x4
		t4 := (^x4) & x0
		x0 ^= t1
		x1 ^= t2
		x2 ^= t3
		x3 ^= t4
		x4 ^= t0
		x1 ^= x0
		x0 ^= x4
		x3 ^= x2
		x2 = ^x2

		// linear diffusion layer
		x0 ^= bits.RotateLeft64(x0, -19) ^ bits.RotateLeft64(x0, -28)
		x1 ^= bits.RotateLeft64(x1, -61) ^ bits.RotateLeft64(x1, -39)
		x2 ^= bits.RotateLeft64(x2, -1) ^ bits.RotateLeft64(x2, -6)
		x3 ^= bits.RotateLeft64(x3, -10) ^ bits.RotateLeft64(x3, -17)
		x4 ^= bits.RotateLeft64(x4, -7) ^ bits.RotateLeft64(x4, -41)
	}

	s[0], s[1], s[2], s[3], s[4] = x0, x1, x2, x3, x4
}

// zero overwrites the state's lanes so key- and message-dependent
// material does not linger on the stack after a public entry point
// returns. See zeroize.go.
func (s *state) zero() {
	zeroState(s)
}
