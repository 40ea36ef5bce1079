package ascon

import (
	"bytes"
	"testing"
)

func TestMacDeterministic(t *testing.T) {
	key := sequentialBytes(16)
	msg := []byte("authenticate me")

	tag1, err := Mac(key, msg)
	if err != nil {
		t.Fatalf("Mac: %v", err)
	}
	tag2, err := Mac(key, msg)
	if err != nil {
		t.Fatalf("Mac: %v", err)
	}
	if tag1 != tag2 {
		t.Fatalf("Mac is not deterministic: %x != %x", tag1, tag2)
	}
}

func TestMacRejectsBadKeySize(t *testing.T) {
	if _, err := Mac(sequentialBytes(15), nil); err != ErrKeySize {
		t.Fatalf("expected ErrKeySize, got %v", err)
	}
}

func TestMacSensitiveToMessage(t *testing.T) {
	key := sequentialBytes(16)
	tag1, _ := Mac(key, []byte("message a"))
	tag2, _ := Mac(key, []byte("message b"))
	if tag1 == tag2 {
		t.Fatal("different messages under the same key produced the same tag")
	}
}

func TestMacSensitiveToKey(t *testing.T) {
	key1 := sequentialBytes(16)
	key2 := make([]byte, 16)
	copy(key2, key1)
	key2[15] ^= 0x01

	msg := []byte("same message")
	tag1, _ := Mac(key1, msg)
	tag2, _ := Mac(key2, msg)
	if tag1 == tag2 {
		t.Fatal("different keys over the same message produced the same tag")
	}
}

func TestMacMultiBlockMessage(t *testing.T) {
	key := sequentialBytes(16)
	msg := sequentialBytes(100)

	tag, err := Mac(key, msg)
	if err != nil {
		t.Fatalf("Mac: %v", err)
	}

	var zero [16]byte
	if tag == zero {
		t.Fatal("multi-block Mac tag is all zero, which is implausible")
	}
}

func TestPrfArbitraryLength(t *testing.T) {
	key := sequentialBytes(16)
	msg := []byte("prf me")

	for _, n := range []int{1, 16, 32, 100} {
		out, err := Prf(key, msg, n)
		if err != nil {
			t.Fatalf("Prf(%d): %v", n, err)
		}
		if len(out) != n {
			t.Fatalf("Prf(%d) returned %d bytes", n, len(out))
		}
	}
}

func TestPrfIsPrefixOfPrfMac(t *testing.T) {
	key := sequentialBytes(16)
	msg := []byte("prefix check")

	short, err := Prf(key, msg, 16)
	if err != nil {
		t.Fatalf("Prf: %v", err)
	}
	long, err := Prf(key, msg, 48)
	if err != nil {
		t.Fatalf("Prf: %v", err)
	}
	if !bytes.Equal(short, long[:16]) {
		t.Fatalf("Prf(msg,16) != Prf(msg,48)[:16]:\n%x\n%x", short, long[:16])
	}
}

func TestPrfRejectsNonPositiveLength(t *testing.T) {
	key := sequentialBytes(16)
	if _, err := Prf(key, nil, 0); err != ErrOutputLength {
		t.Fatalf("expected ErrOutputLength, got %v", err)
	}
}

func TestPrfShortEmptyMessage(t *testing.T) {
	key := sequentialBytes(16)
	tag, err := PrfShort(key, nil)
	if err != nil {
		t.Fatalf("PrfShort: %v", err)
	}
	tag2, err := PrfShort(key, nil)
	if err != nil {
		t.Fatalf("PrfShort: %v", err)
	}
	if tag != tag2 {
		t.Fatalf("PrfShort is not deterministic: %x != %x", tag, tag2)
	}
}

func TestPrfShortAllLengths(t *testing.T) {
	key := sequentialBytes(16)
	seen := make(map[[16]byte]int)
	for n := 0; n <= 16; n++ {
		tag, err := PrfShort(key, sequentialBytes(n))
		if err != nil {
			t.Fatalf("PrfShort(len=%d): %v", n, err)
		}
		if prev, ok := seen[tag]; ok {
			t.Fatalf("PrfShort(len=%d) collided with len=%d", n, prev)
		}
		seen[tag] = n
	}
}

func TestPrfShortRejectsOverlongMessage(t *testing.T) {
	key := sequentialBytes(16)
	if _, err := PrfShort(key, sequentialBytes(17)); err != ErrMessageTooLong {
		t.Fatalf("expected ErrMessageTooLong, got %v", err)
	}
}

func TestPrfShortRejectsBadKeySize(t *testing.T) {
	if _, err := PrfShort(sequentialBytes(15), nil); err != ErrKeySize {
		t.Fatalf("expected ErrKeySize, got %v", err)
	}
}
