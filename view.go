// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package keycmp

import "code.hybscloud.com/keycmp/internal/word"

// View is the capability to expose a key's backing 32 bytes without
// copying. Wrapper types that cannot be expressed as a defined 32-byte
// array (structs carrying a key alongside other fields) implement View to
// use the comparator.
//
// The returned pointer is a borrowed read-only view: it must remain valid
// for the duration of the comparator call, and the comparator never writes
// through it. Because the array type is fixed at 32 bytes, a View
// implementation cannot hand the comparator a short or long operand.
type View interface {
	Key() *[Size]byte
}

// EqualViews reports whether the keys exposed by a and b contain the same
// 32 bytes.
func EqualViews(a, b View) bool {
	return word.Equal(a.Key(), b.Key())
}

// CompareViews returns -1, 0 or +1 ordering a's key against b's key; see
// Compare for the ordering semantics.
func CompareViews(a, b View) int {
	return word.Compare(a.Key(), b.Key())
}
