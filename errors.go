package ascon

import "errors"

// Sentinel errors surfaced at the API boundary (spec §7). ErrAuthFailed is
// the only error that can occur during cryptographic processing itself;
// the rest are precondition checks on caller-supplied lengths. Seal and
// Open do not return ErrNonceSize: cipher.AEAD's Seal has no error
// result, so a bad nonce makes both panic with that error's text.
var (
	// ErrAuthFailed is returned by AEAD Open when the supplied tag does
	// not match the computed tag. The output buffer's contents on this
	// path are unspecified and must be treated as garbage by the caller.
	ErrAuthFailed = errors.New("ascon: message authentication failed")

	// ErrKeySize is returned when a key does not match the length
	// required by the selected variant.
	ErrKeySize = errors.New("ascon: invalid key size")

	// ErrNonceSize is the panic message of Seal and Open when a nonce is
	// not exactly 16 bytes.
	ErrNonceSize = errors.New("ascon: invalid nonce size")

	// ErrShortCiphertext is returned when a ciphertext is shorter than
	// the variant's tag size, so it cannot possibly contain a tag.
	ErrShortCiphertext = errors.New("ascon: ciphertext shorter than tag size")

	// ErrOutputLength is returned by Prf when a caller requests a
	// negative or zero output length.
	ErrOutputLength = errors.New("ascon: invalid output length")

	// ErrMessageTooLong is returned by PrfShort when the message exceeds
	// 16 bytes.
	ErrMessageTooLong = errors.New("ascon: message too long for PrfShort")

	// ErrUnknownVariant is returned when a Variant value outside the
	// registry in params.go is used.
	ErrUnknownVariant = errors.New("ascon: unknown variant")

	// ErrBadBufferOverlap is returned when Seal or Open is asked to
	// write to a destination that partially, but not exactly, overlaps
	// its source — a pattern that cannot be processed safely in place.
	ErrBadBufferOverlap = errors.New("ascon: invalid buffer overlap")
)
