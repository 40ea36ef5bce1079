package ascon

// Mac computes a 16-byte Ascon-Mac authentication tag over message using
// a 16-byte key (spec §4.5).
func Mac(key, message []byte) ([16]byte, error) {
	var tag [16]byte
	if len(key) != 16 {
		return tag, ErrKeySize
	}
	s := newKeyedSponge(ivMac, key)
	defer s.zero()
	absorbKeyed(&s, message, macRoundsB)
	var out [16]byte
	squeeze(&s, macRoundsB, out[:])
	return out, nil
}

// Prf produces an outlen-byte Ascon-Prf output over message using a
// 16-byte key (spec §4.5).
func Prf(key, message []byte, outlen int) ([]byte, error) {
	if len(key) != 16 {
		return nil, ErrKeySize
	}
	if outlen <= 0 {
		return nil, ErrOutputLength
	}
	s := newKeyedSponge(ivPrf, key)
	defer s.zero()
	absorbKeyed(&s, message, macRoundsB)
	out := make([]byte, outlen)
	squeeze(&s, macRoundsB, out)
	return out, nil
}

// PrfShort computes a 16-byte Ascon-PrfShort tag over a message of at
// most 16 bytes using a 16-byte key (spec §4.5). It is a single-
// permutation construction intended for short, fixed-length messages
// (e.g. protocol counters) where the full Prf's multi-block absorption
// would be overkill.
func PrfShort(key, message []byte) ([16]byte, error) {
	var tag [16]byte
	if len(key) != 16 {
		return tag, ErrKeySize
	}
	if len(message) > prfShortMaxBytes {
		return tag, ErrMessageTooLong
	}

	k0 := loadBytes(key[0:8], 8)
	k1 := loadBytes(key[8:16], 8)

	r := len(message)
	var m0, m1 uint64
	switch {
	case r <= 8:
		m0 = loadBytes(message, r)
		if r < 8 {
			m0 |= pad(r)
		}
	default:
		m0 = loadBytes(message[0:8], 8)
		rest := message[8:r]
		m1 = loadBytes(rest, len(rest))
		if len(rest) < 8 {
			m1 |= pad(len(rest))
		}
	}

	var s state
	defer s.zero()
	s[0] = ivPrfShort | prfsMlen(r)
	s[1] = k0
	s[2] = k1
	s[3] = m0
	s[4] = m1
	s.permute(12)
	s[3] ^= k0
	s[4] ^= k1

	storeBytes(tag[0:8], s[3], 8)
	storeBytes(tag[8:16], s[4], 8)
	return tag, nil
}

// prfsMlen implements the spec §4.5 PRFS_MLEN bit-spreading encoding of
// a message length in [0,16] into the high bits of the PrfShort IV
// lane, one bit of len per fixed gap so it cannot collide with the IV's
// own fixed bits.
func prfsMlen(n int) uint64 {
	l := uint64(n)
	return (l&1)<<30 | (l&2)<<37 | (l&4)<<44 | (l&8)<<51 | (l&16)<<58
}

// newKeyedSponge builds the shared Mac/Prf initial state: a dedicated
// IV in lane 0, the 16-byte key in lanes 1-2, and zero in lanes 3-4,
// then one rounds-a permutation to mix the key through the state before
// message absorption begins (spec §4.5; mirrors the AEAD init/permute/
// key-XOR pattern in aead.go since, unlike the hash IVs, this state
// depends on caller-supplied key material and so cannot be a precomputed
// constant).
func newKeyedSponge(iv uint64, key []byte) state {
	var s state
	s[0] = iv
	s[1] = loadBytes(key[0:8], 8)
	s[2] = loadBytes(key[8:16], 8)
	s.permute(macRoundsA)
	return s
}

// absorbKeyed absorbs message exactly as hashing does (spec §4.4
// Absorb), at the fixed Mac/Prf rate of 8 bytes.
func absorbKeyed(s *state, message []byte, roundsB int) {
	for len(message) >= macRate {
		s[0] ^= loadBytes(message[0:8], 8)
		s.permute(roundsB)
		message = message[macRate:]
	}
	s[0] ^= loadBytes(message, len(message))
	s[0] ^= pad(len(message))
}
