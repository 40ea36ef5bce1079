package ascon

import "unsafe"

// sliceForAppend is the standard append-into-dst helper used by every
// AEAD in the standard library and in golang.org/x/crypto: it returns a
// slice of length len(in)+n, reusing in's backing array when there is
// room, so that Seal(nil, ...) and Seal(dst[:0], ...) both work without
// an extra allocation in the common case.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return head, tail
}

// anyOverlap reports whether x and y share any memory.
func anyOverlap(x, y []byte) bool {
	return len(x) > 0 && len(y) > 0 &&
		uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}

// inexactOverlap reports whether x and y share memory at different
// starting offsets. Exactly-aliased slices (x and y begin at the same
// address, the c == m in-place case spec §5 requires support for) are
// not flagged: every block in aead.go reads its input into locals
// before writing its output, so same-offset aliasing is safe, while a
// shifted overlap would read already-overwritten bytes.
func inexactOverlap(x, y []byte) bool {
	if len(x) == 0 || len(y) == 0 || &x[0] == &y[0] {
		return false
	}
	return anyOverlap(x, y)
}
