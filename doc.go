// Package ascon implements the Ascon family of lightweight cryptographic
// primitives: authenticated encryption with associated data (Ascon-128,
// Ascon-128a, Ascon-80pq), hashing and extendable-output functions
// (Ascon-Hash, Ascon-Hasha, Ascon-Xof, Ascon-Xofa), and message
// authentication (Ascon-Mac, Ascon-Prf, Ascon-PrfShort).
//
// # Overview
//
// Every construction is built on a single 320-bit permutation operating
// on five 64-bit lanes (see permutation.go). The AEAD, hash/XOF, and
// MAC/PRF modes differ only in how they drive that permutation through a
// duplex sponge: how much data is absorbed or squeezed per call
// (the rate), how many rounds separate each call, and how the state is
// initialized and finalized.
//
// # Basic usage
//
//	aead, err := ascon.NewAEAD(ascon.Ascon128, key)
//	ciphertext := aead.Seal(nil, nonce, plaintext, associatedData)
//	plaintext, err := aead.Open(nil, nonce, ciphertext, associatedData)
//
//	digest := ascon.NewHash(ascon.AsconHash)
//	digest.Write(message)
//	sum := digest.Sum(nil)
//
//	xof := ascon.NewXof(ascon.AsconXof)
//	xof.Write(message)
//	out := make([]byte, 64)
//	xof.Read(out)
//
//	tag, err := ascon.Mac(key, message)
//
// # One-shot only
//
// The AEAD and MAC/PRF calls above are one-shot: every call absorbs its
// full input and produces its full output before returning. A streaming
// variant of them (init / absorb-partial-buffering-to-rate-boundaries /
// finalize) is straightforward to derive from the sponge operations in
// permutation.go and codec.go and would need to produce byte-identical
// output for the same concatenated input, but is not exposed here. The
// hash and XOF types are the exception: their Write buffers input to the
// 8-byte rate, so a message may be fed in any number of chunks.
//
// # Constant time
//
// The permutation and all mode implementations avoid secret-dependent
// branches and array indices; the bitsliced substitution layer in
// permutation.go is used instead of a table-driven S-box for exactly
// this reason. AEAD tag verification compares in constant time via
// crypto/subtle.
package ascon
