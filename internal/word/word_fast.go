//go:build (amd64 || arm64) && !purego

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package word

import "unsafe"

// Fast path: view each operand as four machine words and load them
// directly. Restricted to ports where unaligned word loads are safe; the
// [Size]byte pointee carries no alignment guarantee.

// Equal reports whether a and b contain the same Size bytes, stopping at
// the first differing word.
func Equal(a, b *[Size]byte) bool {
	x := (*[Size / 8]uint64)(unsafe.Pointer(a))
	y := (*[Size / 8]uint64)(unsafe.Pointer(b))
	if x[0] != y[0] {
		return false
	}
	if x[1] != y[1] {
		return false
	}
	if x[2] != y[2] {
		return false
	}
	return x[3] == y[3]
}

// Compare returns -1, 0 or +1 ordering a against b by the first differing
// word in native byte order.
func Compare(a, b *[Size]byte) int {
	x := (*[Size / 8]uint64)(unsafe.Pointer(a))
	y := (*[Size / 8]uint64)(unsafe.Pointer(b))
	if x[0] != y[0] {
		return ordered(x[0], y[0])
	}
	if x[1] != y[1] {
		return ordered(x[1], y[1])
	}
	if x[2] != y[2] {
		return ordered(x[2], y[2])
	}
	if x[3] != y[3] {
		return ordered(x[3], y[3])
	}
	return 0
}
