package ascon

// XOF is an Ascon-Xof or Ascon-Xofa extendable-output function. It is
// written to via Write during the absorb phase, then read from via Read
// during the squeeze phase; once any byte has been read, further writes
// panic, mirroring golang.org/x/crypto/sha3's ShakeHash contract (the
// underlying duplex sponge cannot un-absorb).
type XOF struct {
	iv        [5]uint64
	roundsB   int
	s         state
	buf       []byte
	squeezing bool
}

// NewXof returns an extendable-output function for the given Ascon XOF
// variant (AsconXof or AsconXofa). Passing a fixed-output hash or AEAD
// variant panics.
func NewXof(variant Variant) *XOF {
	p, ok := hashRegistry[variant]
	if !ok || p.outBytes != 0 {
		panic("ascon: " + variant.String() + " is not an extendable-output variant")
	}
	x := &XOF{iv: p.iv, roundsB: p.roundsB}
	x.Reset()
	return x
}

// Reset returns the XOF to its initial, empty-absorption state.
func (x *XOF) Reset() {
	x.s = state(x.iv)
	x.buf = x.buf[:0]
	x.squeezing = false
}

// Clone returns an independent copy of x, capturing everything absorbed
// or squeezed so far.
func (x *XOF) Clone() *XOF {
	c := *x
	c.buf = append([]byte(nil), x.buf...)
	return &c
}

// Write absorbs message bytes (spec §4.4 Absorb). It panics if any
// output has already been read from this XOF.
func (x *XOF) Write(p []byte) (int, error) {
	if x.squeezing {
		panic("ascon: write to XOF after read")
	}
	n := len(p)
	x.buf = append(x.buf, p...)
	for len(x.buf) >= 8 {
		x.s[0] ^= loadBytes(x.buf[:8], 8)
		x.s.permute(x.roundsB)
		x.buf = x.buf[8:]
	}
	return n, nil
}

// Read squeezes len(p) bytes of output (spec §4.4 Squeeze), filling p
// completely. Because the output stream is generated on demand one
// 8-byte block at a time, xof(M, n)[:m] == xof(M, m) for any m <= n
// (spec §8.1 XOF extension).
func (x *XOF) Read(p []byte) (int, error) {
	if !x.squeezing {
		x.s[0] ^= loadBytes(x.buf, len(x.buf))
		x.s[0] ^= pad(len(x.buf))
		x.s.permute(12)
		x.squeezing = true
		x.buf = make([]byte, 8)
		storeBytes(x.buf, x.s[0], 8)
	}

	n := 0
	for n < len(p) {
		if len(x.buf) == 0 {
			x.s.permute(x.roundsB)
			x.buf = make([]byte, 8)
			storeBytes(x.buf, x.s[0], 8)
		}
		c := copy(p[n:], x.buf)
		n += c
		x.buf = x.buf[c:]
	}
	return n, nil
}
