package ascon

import "hash"

// asconHash implements hash.Hash for Ascon-Hash and Ascon-Hasha. Unlike
// the one-shot AEAD and MAC/PRF entry points, a hash.Hash is inherently
// long-lived across calls (Write may be called any number of times
// before Sum), so it is not zeroized the way a single-call state is:
// there is no secret key material here, only whatever message bytes the
// caller chooses to feed it.
type asconHash struct {
	iv       [5]uint64
	roundsB  int
	outBytes int
	s        state
	buf      []byte
}

var _ hash.Hash = (*asconHash)(nil)

// NewHash returns a hash.Hash implementing the given Ascon hash variant
// (AsconHash or AsconHasha). Passing an XOF or AEAD variant panics, since
// those are not fixed-output hash constructions.
func NewHash(variant Variant) hash.Hash {
	p, ok := hashRegistry[variant]
	if !ok || p.outBytes == 0 {
		panic("ascon: " + variant.String() + " is not a fixed-output hash variant")
	}
	h := &asconHash{iv: p.iv, roundsB: p.roundsB, outBytes: p.outBytes}
	h.Reset()
	return h
}

func (h *asconHash) Reset() {
	h.s = state(h.iv)
	h.buf = h.buf[:0]
}

func (h *asconHash) Size() int      { return h.outBytes }
func (h *asconHash) BlockSize() int { return 8 }

// Write absorbs message bytes (spec §4.4 Absorb). It may be called any
// number of times with any chunk sizes; the result is identical to
// calling it once with the concatenation of all chunks, since only
// full 8-byte blocks are ever permuted and any remainder is buffered.
func (h *asconHash) Write(p []byte) (int, error) {
	n := len(p)
	h.buf = append(h.buf, p...)
	for len(h.buf) >= 8 {
		h.s[0] ^= loadBytes(h.buf[:8], 8)
		h.s.permute(h.roundsB)
		h.buf = h.buf[8:]
	}
	return n, nil
}

// Sum appends the digest of everything absorbed so far to b, without
// modifying the hash's state, so Write may continue to be called
// afterward (the standard hash.Hash contract).
func (h *asconHash) Sum(b []byte) []byte {
	final := h.s
	final[0] ^= loadBytes(h.buf, len(h.buf))
	final[0] ^= pad(len(h.buf))

	out := make([]byte, h.outBytes)
	squeeze(&final, h.roundsB, out)
	return append(b, out...)
}

// squeeze implements spec §4.4 Squeeze for the 8-byte-rate hash/XOF
// family: one P(12), then emit lane 0 eight bytes at a time, applying
// P(roundsB) between blocks and stopping as soon as out is filled.
func squeeze(s *state, roundsB int, out []byte) {
	s.permute(12)
	for len(out) > 0 {
		n := 8
		if n > len(out) {
			n = len(out)
		}
		storeBytes(out[:n], s[0], n)
		out = out[n:]
		if len(out) > 0 {
			s.permute(roundsB)
		}
	}
}
