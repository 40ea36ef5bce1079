package ascon

// Variant identifies one of the AEAD or hash/XOF parameter sets (spec
// §3.1, §4.3, §4.4). MAC/PRF variants are not Variant values: they carry
// their own dedicated IVs and are selected by calling Mac, Prf, or
// PrfShort directly rather than through a shared constructor.
type Variant int

const (
	Ascon128 Variant = iota
	Ascon128a
	Ascon80pq
	AsconHash
	AsconHasha
	AsconXof
	AsconXofa
)

func (v Variant) String() string {
	switch v {
	case Ascon128:
		return "Ascon-128"
	case Ascon128a:
		return "Ascon-128a"
	case Ascon80pq:
		return "Ascon-80pq"
	case AsconHash:
		return "Ascon-Hash"
	case AsconHasha:
		return "Ascon-Hasha"
	case AsconXof:
		return "Ascon-Xof"
	case AsconXofa:
		return "Ascon-Xofa"
	default:
		return "unknown"
	}
}

// aeadParams holds the immutable parameter record for an AEAD variant
// (spec §3.1 Parameter set, §4.3 table). rate is in bytes; roundsA is
// used for initialization and finalization, roundsB for block
// processing.
type aeadParams struct {
	rate     int
	roundsA  int
	roundsB  int
	keyBytes int
	tagBytes int
	iv       uint64 // lane 0 IV constant; Ascon80pq ORs its key's first 4 bytes into the low 32 bits
}

var aeadRegistry = map[Variant]aeadParams{
	Ascon128:  {rate: 8, roundsA: 12, roundsB: 6, keyBytes: 16, tagBytes: 16, iv: 0x80400c0600000000},
	Ascon128a: {rate: 16, roundsA: 12, roundsB: 8, keyBytes: 16, tagBytes: 16, iv: 0x80800c0800000000},
	Ascon80pq: {rate: 8, roundsA: 12, roundsB: 6, keyBytes: 20, tagBytes: 16, iv: 0xa0400c0600000000},
}

// hashParams holds the immutable parameter record for a hash/XOF
// variant (spec §4.4 table). outBytes is 0 for the XOF variants, whose
// output length is chosen by the caller.
type hashParams struct {
	rate     int
	roundsA  int
	roundsB  int
	outBytes int
	iv       [5]uint64
}

var hashRegistry = map[Variant]hashParams{
	AsconHash: {
		rate: 8, roundsA: 12, roundsB: 12, outBytes: 32,
		iv: [5]uint64{0xee9398aadb67f03d, 0x8bb21831c60f1002, 0xb48a92db98d5da62, 0x43189921b8f8e3e8, 0x348fa5c9d525e140},
	},
	AsconHasha: {
		rate: 8, roundsA: 12, roundsB: 8, outBytes: 32,
		iv: [5]uint64{0x01470194fc6528a6, 0x738ec38ac0adffa7, 0x2ec8e3296c76384c, 0xd6f6a54d7f52377d, 0xa13c42a223be8d87},
	},
	AsconXof: {
		rate: 8, roundsA: 12, roundsB: 12, outBytes: 0,
		iv: [5]uint64{0xb57e273b814cd416, 0x2b51042562ae2420, 0x66a3a7768ddf2218, 0x5aad0a7a8153650c, 0x4f3e0e32539493b6},
	},
	AsconXofa: {
		rate: 8, roundsA: 12, roundsB: 8, outBytes: 0,
		iv: [5]uint64{0x44906568b77b9832, 0xcd8d6cae53455532, 0xf7b5212756422129, 0x246885e1de0d225b, 0xa8cb5ce33449973f},
	},
}

// MAC/PRF family IVs (spec §4.5). These variants always use rate 8,
// rounds_a = rounds_b = 12, and a 16-byte key absorbed directly into
// lanes 1-2 of the initial state (see mac.go), so unlike the AEAD and
// hash families they do not need a struct-valued registry entry.
const (
	macRate    = 8
	macRoundsA = 12
	macRoundsB = 12

	ivMac      uint64 = 0x80808c0000000080
	ivPrf      uint64 = 0x80808c0000000000
	ivPrfShort uint64 = 0x80808c0000000040

	prfShortMaxBytes = 16
)
