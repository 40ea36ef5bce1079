package ascon

import (
	"bytes"
	"testing"
)

func TestXofEmptyLength(t *testing.T) {
	x := NewXof(AsconXof)
	out := make([]byte, 64)
	if _, err := x.Read(out); err != nil {
		t.Fatalf("Read: %v", err)
	}
	var zero [64]byte
	if bytes.Equal(out, zero[:]) {
		t.Fatal("64-byte XOF output of the empty message is all zero, which is implausible")
	}
}

func TestXofExtensionProperty(t *testing.T) {
	msg := []byte("extend me")

	x1 := NewXof(AsconXofa)
	x1.Write(msg)
	long := make([]byte, 136)
	x1.Read(long)

	x2 := NewXof(AsconXofa)
	x2.Write(msg)
	short := make([]byte, 40)
	x2.Read(short)

	if !bytes.Equal(long[:40], short) {
		t.Fatalf("xof(M,136)[:40] != xof(M,40):\n%x\n%x", long[:40], short)
	}
}

func TestXofReadAcrossMultipleBlocks(t *testing.T) {
	x := NewXof(AsconXof)
	x.Write(sequentialBytes(50))

	whole := make([]byte, 100)
	x2 := NewXof(AsconXof)
	x2.Write(sequentialBytes(50))
	x2.Read(whole)

	pieces := make([]byte, 0, 100)
	buf := make([]byte, 7)
	for len(pieces) < 100 {
		n := 7
		if len(pieces)+n > 100 {
			n = 100 - len(pieces)
		}
		x.Read(buf[:n])
		pieces = append(pieces, buf[:n]...)
	}

	if !bytes.Equal(pieces, whole) {
		t.Fatalf("piecewise Read diverges from one large Read:\n%x\n%x", pieces, whole)
	}
}

func TestXofWriteAfterReadPanics(t *testing.T) {
	x := NewXof(AsconXof)
	x.Read(make([]byte, 8))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic writing to an XOF that has already been read from")
		}
	}()
	x.Write([]byte("too late"))
}

func TestXofCloneIndependence(t *testing.T) {
	x := NewXof(AsconXofa)
	x.Write([]byte("shared prefix"))

	clone := x.Clone()

	x.Write([]byte(" original tail"))
	clone.Write([]byte(" clone tail"))

	outX := make([]byte, 32)
	outClone := make([]byte, 32)
	x.Read(outX)
	clone.Read(outClone)

	if bytes.Equal(outX, outClone) {
		t.Fatal("clone and original diverged in input but produced identical output")
	}
}

func TestXofResetMatchesFreshInstance(t *testing.T) {
	x := NewXof(AsconXof)
	x.Write([]byte("first message"))
	x.Read(make([]byte, 8))
	x.Reset()
	x.Write([]byte("second message"))
	got := make([]byte, 32)
	x.Read(got)

	fresh := NewXof(AsconXof)
	fresh.Write([]byte("second message"))
	want := make([]byte, 32)
	fresh.Read(want)

	if !bytes.Equal(got, want) {
		t.Fatalf("Reset did not restore a fresh state:\ngot  %x\nwant %x", got, want)
	}
}

func TestXofPanicsOnHashVariant(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic constructing an XOF from a fixed-output hash variant")
		}
	}()
	NewXof(AsconHash)
}
