// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package keycmp compares fixed 32-byte keys (hashes, account IDs, public
// keys) a 64-bit word at a time.
//
// Semantics and design:
//   - Chunked comparison: each operand is read as four 8-byte chunks at
//     offsets 0, 8, 16 and 24, interpreted as native-endian uint64 words and
//     compared in ascending offset order. The first differing chunk resolves
//     the result; later chunks are not read. Average cost is proportional to
//     the position of the first difference, not to 32.
//   - Ordering is chunk-numeric, not byte-lexicographic: chunks are compared
//     as native machine words, so on little-endian ports Compare does not
//     agree with bytes.Compare. The order is total and deterministic on any
//     one machine, which is what key-ordered containers need. Callers that
//     require big-endian lexicographic order should use bytes.Compare.
//   - Not constant-time: timing varies with the position of the first
//     difference. Do not use for secret material; see crypto/subtle.
//   - Zero allocation, no retained state: operands are borrowed views valid
//     for the duration of the call, never copied or mutated. Calls are safe
//     from any number of goroutines.
//
// The comparator has a platform fast path and a portable fallback, selected
// once per build via build tags in internal/word; the two produce identical
// results for every input on the same machine.
package keycmp

import (
	"unsafe"

	"code.hybscloud.com/keycmp/internal/word"
)

// Size is the exact operand length in bytes. Operands of any other length
// never reach the comparator; see FromSlice.
const Size = word.Size

// Equal reports whether a and b contain the same 32 bytes.
//
// K may be any defined 32-byte array type, so domain key types flow through
// without copying. The pointees are only read.
func Equal[K ~[Size]byte](a, b *K) bool {
	return word.Equal((*[Size]byte)(unsafe.Pointer(a)), (*[Size]byte)(unsafe.Pointer(b)))
}

// Compare returns -1, 0 or +1 ordering a against b by the first differing
// 8-byte chunk, interpreted as a native-endian uint64.
//
// Compare(a, b) == 0 exactly when Equal(a, b). See the package comment for
// how this order relates to bytes.Compare.
func Compare[K ~[Size]byte](a, b *K) int {
	return word.Compare((*[Size]byte)(unsafe.Pointer(a)), (*[Size]byte)(unsafe.Pointer(b)))
}
