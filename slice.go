// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package keycmp

import "code.hybscloud.com/keycmp/internal/word"

// FromSlice returns a 32-byte view aliasing p's backing array, or
// ErrInvalidLength when len(p) != Size. The view is not a copy: it remains
// tied to p and is valid only as long as p's backing array is.
//
// This is the only door from variable-length containers into the
// comparator; a slice of any other length is rejected here, never
// truncated or padded.
func FromSlice(p []byte) (*[Size]byte, error) {
	if len(p) != Size {
		return nil, ErrInvalidLength
	}
	return (*[Size]byte)(p), nil
}

// EqualSlices reports whether a and b contain the same 32 bytes. Either
// operand of length != Size yields ErrInvalidLength and a false result
// that carries no meaning.
func EqualSlices(a, b []byte) (bool, error) {
	ka, err := FromSlice(a)
	if err != nil {
		return false, err
	}
	kb, err := FromSlice(b)
	if err != nil {
		return false, err
	}
	return word.Equal(ka, kb), nil
}

// CompareSlices returns -1, 0 or +1 ordering a against b per Compare.
// Either operand of length != Size yields ErrInvalidLength and a zero
// result that carries no meaning.
func CompareSlices(a, b []byte) (int, error) {
	ka, err := FromSlice(a)
	if err != nil {
		return 0, err
	}
	kb, err := FromSlice(b)
	if err != nil {
		return 0, err
	}
	return word.Compare(ka, kb), nil
}
