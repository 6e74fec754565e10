// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package word

// Size is the operand length in bytes. The comparator reads exactly
// Size/8 words per operand, fewer when an early word resolves the result.
const Size = 32

// equalGeneric is the portable chunk walk. It must report the same result
// as the fast path for every input on the same machine; the test suite
// checks the two against each other.
func equalGeneric(a, b *[Size]byte) bool {
	if native.Uint64(a[0:8]) != native.Uint64(b[0:8]) {
		return false
	}
	if native.Uint64(a[8:16]) != native.Uint64(b[8:16]) {
		return false
	}
	if native.Uint64(a[16:24]) != native.Uint64(b[16:24]) {
		return false
	}
	return native.Uint64(a[24:32]) == native.Uint64(b[24:32])
}

// compareGeneric orders by the first differing word, interpreted in native
// byte order. The resulting order is chunk-numeric, not byte-lexicographic;
// the fast path has the same behavior and callers rely on it.
func compareGeneric(a, b *[Size]byte) int {
	if x, y := native.Uint64(a[0:8]), native.Uint64(b[0:8]); x != y {
		return ordered(x, y)
	}
	if x, y := native.Uint64(a[8:16]), native.Uint64(b[8:16]); x != y {
		return ordered(x, y)
	}
	if x, y := native.Uint64(a[16:24]), native.Uint64(b[16:24]); x != y {
		return ordered(x, y)
	}
	if x, y := native.Uint64(a[24:32]), native.Uint64(b[24:32]); x != y {
		return ordered(x, y)
	}
	return 0
}

func ordered(x, y uint64) int {
	if x > y {
		return 1
	}
	return -1
}
