package ascon

import (
	"crypto/cipher"
	"crypto/subtle"
)

// NonceSize is the size in bytes of an Ascon AEAD nonce, fixed for every
// variant (spec §3.1).
const NonceSize = 16

// asconAEAD implements crypto/cipher.AEAD for one Ascon AEAD variant. It
// holds only the caller's key (copied so the caller's buffer can be
// reused or wiped independently) and the variant's parameter set; it
// carries no other state between calls, matching the one-shot,
// stateless model of spec §5.
type asconAEAD struct {
	variant Variant
	params  aeadParams
	key     []byte
}

var _ cipher.AEAD = (*asconAEAD)(nil)

// NewAEAD returns a cipher.AEAD implementing the given Ascon AEAD
// variant (Ascon128, Ascon128a, or Ascon80pq). key must be exactly the
// variant's key length (16 bytes for Ascon128/Ascon128a, 20 bytes for
// Ascon80pq).
func NewAEAD(variant Variant, key []byte) (cipher.AEAD, error) {
	p, ok := aeadRegistry[variant]
	if !ok {
		return nil, ErrUnknownVariant
	}
	if len(key) != p.keyBytes {
		return nil, ErrKeySize
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &asconAEAD{variant: variant, params: p, key: k}, nil
}

func (a *asconAEAD) NonceSize() int { return NonceSize }
func (a *asconAEAD) Overhead() int  { return a.params.tagBytes }

// Seal encrypts and authenticates plaintext, appending the result to
// dst. dst and plaintext may refer to the same underlying array at the
// same starting offset (spec §5 in-place requirement); any other
// overlap panics, matching the convention of every cipher.AEAD in the
// standard library.
func (a *asconAEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic(ErrNonceSize.Error())
	}
	ret, out := sliceForAppend(dst, len(plaintext)+a.params.tagBytes)
	ciphertext, tagOut := out[:len(plaintext)], out[len(plaintext):]
	if inexactOverlap(ciphertext, plaintext) {
		panic(ErrBadBufferOverlap.Error())
	}

	var s state
	defer s.zero()
	a.initState(&s, nonce)
	a.absorbAD(&s, additionalData)
	a.encrypt(&s, ciphertext, plaintext)
	tag := a.finalize(&s)
	copy(tagOut, tag[:])

	return ret
}

// Open decrypts and authenticates ciphertext, appending the plaintext to
// dst and returning it. If authentication fails, Open returns
// ErrAuthFailed and the contents of any buffer it may have written are
// unspecified (spec §6).
func (a *asconAEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic(ErrNonceSize.Error())
	}
	if len(ciphertext) < a.params.tagBytes {
		return nil, ErrShortCiphertext
	}
	tag := ciphertext[len(ciphertext)-a.params.tagBytes:]
	ciphertext = ciphertext[:len(ciphertext)-a.params.tagBytes]

	ret, out := sliceForAppend(dst, len(ciphertext))
	if inexactOverlap(out, ciphertext) {
		panic(ErrBadBufferOverlap.Error())
	}

	var s state
	defer s.zero()
	a.initState(&s, nonce)
	a.absorbAD(&s, additionalData)
	a.decrypt(&s, out, ciphertext)
	expected := a.finalize(&s)

	if subtle.ConstantTimeCompare(expected[:], tag) != 1 {
		zero(out)
		return nil, ErrAuthFailed
	}
	return ret, nil
}

// initState sets up the permutation state for encryption or decryption
// (spec §4.3 Initialization).
func (a *asconAEAD) initState(s *state, nonce []byte) {
	n0 := loadBytes(nonce[0:8], 8)
	n1 := loadBytes(nonce[8:16], 8)

	switch a.params.keyBytes {
	case 16:
		k0 := loadBytes(a.key[0:8], 8)
		k1 := loadBytes(a.key[8:16], 8)
		s[0], s[1], s[2], s[3], s[4] = a.params.iv, k0, k1, n0, n1
		s.permute(12)
		s[3] ^= k0
		s[4] ^= k1
	case 20:
		k0 := uint64(loadBytes(a.key[0:4], 4) >> 32) // top 32 bits of key, right-justified
		k1 := loadBytes(a.key[4:12], 8)
		k2 := loadBytes(a.key[12:20], 8)
		s[0], s[1], s[2], s[3], s[4] = a.params.iv|k0, k1, k2, n0, n1
		s.permute(12)
		s[2] ^= k0
		s[3] ^= k1
		s[4] ^= k2
	}
}

// absorbAD processes associated data (spec §4.3 Associated-data
// processing). The domain-separation XOR into lane 4 is applied
// unconditionally after the AD phase, even when A is empty.
func (a *asconAEAD) absorbAD(s *state, ad []byte) {
	if len(ad) > 0 {
		rate := a.params.rate
		for len(ad) >= rate {
			s[0] ^= loadBytes(ad[0:8], 8)
			if rate == 16 {
				s[1] ^= loadBytes(ad[8:16], 8)
			}
			s.permute(a.params.roundsB)
			ad = ad[rate:]
		}
		absorbTail(s, ad, rate)
		s.permute(a.params.roundsB)
	}
	s[4] ^= 1
}

// absorbTail XORs the final, possibly empty, padded associated-data
// block into the leading lanes; the caller applies the following
// permutation (spec §4.3/§4.4).
func absorbTail(s *state, tail []byte, rate int) {
	if rate == 16 {
		switch {
		case len(tail) >= 8:
			s[0] ^= loadBytes(tail[0:8], 8)
			rest := tail[8:]
			s[1] ^= loadBytes(rest, len(rest))
			s[1] ^= pad(len(rest))
		default:
			s[0] ^= loadBytes(tail, len(tail))
			s[0] ^= pad(len(tail))
		}
	} else {
		s[0] ^= loadBytes(tail, len(tail))
		s[0] ^= pad(len(tail))
	}
	// Permutation after the AD tail block happens at the caller's
	// chosen round count; AEAD uses roundsB (applied by the caller for
	// AD, skipped for the final ciphertext block per spec §4.3).
}

func (a *asconAEAD) encrypt(s *state, dst, src []byte) {
	rate := a.params.rate
	for len(src) >= rate {
		s[0] ^= loadBytes(src[0:8], 8)
		storeBytes(dst[0:8], s[0], 8)
		if rate == 16 {
			s[1] ^= loadBytes(src[8:16], 8)
			storeBytes(dst[8:16], s[1], 8)
		}
		s.permute(a.params.roundsB)
		src, dst = src[rate:], dst[rate:]
	}

	switch {
	case rate == 16 && len(src) >= 8:
		s[0] ^= loadBytes(src[0:8], 8)
		storeBytes(dst[0:8], s[0], 8)
		rest, restDst := src[8:], dst[8:]
		s[1] ^= loadBytes(rest, len(rest))
		storeBytes(restDst, s[1], len(rest))
		s[1] ^= pad(len(rest))
	default:
		s[0] ^= loadBytes(src, len(src))
		storeBytes(dst, s[0], len(src))
		s[0] ^= pad(len(src))
	}
}

func (a *asconAEAD) decrypt(s *state, dst, src []byte) {
	rate := a.params.rate
	for len(src) >= rate {
		ct0 := loadBytes(src[0:8], 8)
		storeBytes(dst[0:8], s[0]^ct0, 8)
		s[0] = ct0
		if rate == 16 {
			ct1 := loadBytes(src[8:16], 8)
			storeBytes(dst[8:16], s[1]^ct1, 8)
			s[1] = ct1
		}
		s.permute(a.params.roundsB)
		src, dst = src[rate:], dst[rate:]
	}

	switch {
	case rate == 16 && len(src) >= 8:
		ct0 := loadBytes(src[0:8], 8)
		storeBytes(dst[0:8], s[0]^ct0, 8)
		s[0] = ct0
		rest, restDst := src[8:], dst[8:]
		r := len(rest)
		ctTail := loadBytes(rest, r)
		storeBytes(restDst, s[1]^ctTail, r)
		s[1] = clearTop(s[1], r) | ctTail
		s[1] ^= pad(r)
	default:
		r := len(src)
		ctTail := loadBytes(src, r)
		storeBytes(dst, s[0]^ctTail, r)
		s[0] = clearTop(s[0], r) | ctTail
		s[0] ^= pad(r)
	}
}

// finalize computes the 16-byte tag from lanes 3 and 4 after key-dependent
// mixing and a 12-round permutation (spec §4.3 Finalization).
func (a *asconAEAD) finalize(s *state) [16]byte {
	switch a.params.keyBytes {
	case 16:
		k0 := loadBytes(a.key[0:8], 8)
		k1 := loadBytes(a.key[8:16], 8)
		s[1] ^= k0
		s[2] ^= k1
		s.permute(12)
		s[3] ^= k0
		s[4] ^= k1
	case 20:
		k0 := uint64(loadBytes(a.key[0:4], 4) >> 32)
		k1 := loadBytes(a.key[4:12], 8)
		k2 := loadBytes(a.key[12:20], 8)
		s[1] ^= keyRot(k0, k1)
		s[2] ^= keyRot(k1, k2)
		s[3] ^= k2
		s.permute(12)
		s[3] ^= k1
		s[4] ^= k2
	}

	var tag [16]byte
	storeBytes(tag[0:8], s[3], 8)
	storeBytes(tag[8:16], s[4], 8)
	return tag
}

// keyRot implements the spec §4.6 KEYROT helper used in Ascon-80pq
// finalization: byte i of the result has the low nibble of lo2hi's byte
// i in its high half and the high nibble of hi2lo's byte i in its low
// half (big-endian byte numbering, consistent with loadBytes/storeBytes
// elsewhere).
func keyRot(lo2hi, hi2lo uint64) uint64 {
	var w uint64
	for i := 0; i < 8; i++ {
		shift := uint(56 - 8*i)
		a := byte(lo2hi >> shift)
		b := byte(hi2lo >> shift)
		w |= uint64((a<<4)|(b>>4)) << shift
	}
	return w
}
