package ascon

// katVector is one entry of the known-answer-test table that
// ascon_kat_test.go drives; the layout mirrors the project's historic
// KATVector shape (variant, key, nonce, AD, message, expected
// ciphertext and tag) but is scoped down to the handful of scenarios
// the published test data actually pins byte-for-byte.
type katVector struct {
	name       string
	variant    Variant
	key        string
	nonce      string
	ad         string
	plaintext  string
	ciphertext string
	tag        string
}

// aeadKATs holds the AEAD scenarios with pinned ciphertext and tag
// values (spec §8.2, scenarios 1 and 2); the second row pins only a tag
// prefix.
var aeadKATs = []katVector{
	{
		name:       "ascon128/count=1",
		variant:    Ascon128,
		key:        "000102030405060708090A0B0C0D0E0F",
		nonce:      "000102030405060708090A0B0C0D0E0F",
		ad:         "",
		plaintext:  "",
		ciphertext: "",
		tag:        "4427D64B8E1E1451FB445555A5166A63",
	},
	{
		name:       "ascon128/count=33",
		variant:    Ascon128,
		key:        "000102030405060708090A0B0C0D0E0F",
		nonce:      "000102030405060708090A0B0C0D0E0F",
		ad:         "00",
		plaintext:  "00",
		ciphertext: "BC",
		// Only the leading two tag bytes are pinned in the published row;
		// TestAeadKATTable compares only that prefix.
		tag: "820F",
	},
}

// hashKATs holds the fixed-output hash scenarios (spec §8.2, scenarios
// 3 and 4). "plaintext" here is the hashed message; ciphertext is
// unused.
var hashKATs = []katVector{
	{
		name:      "asconhash/empty",
		variant:   AsconHash,
		plaintext: "",
		tag:       "7346BC14F036E87AE03D0997913088F5F68411434B3CF8B54FA796A80D251F91",
	},
	{
		name:      "asconhash/00",
		variant:   AsconHash,
		plaintext: "00",
		tag:       "0B3BE5850F2F6B98CAF29F8FDEA89B64A1FA70AA249B8F839BD53BAA304D92B2",
	},
}
