//go:build purego || (!amd64 && !arm64)

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package word

// Portable build: the exported comparator is the generic chunk walk. Same
// traversal order and word interpretation as the fast path, so results are
// identical for every input on the same machine.

// Equal reports whether a and b contain the same Size bytes, stopping at
// the first differing word.
func Equal(a, b *[Size]byte) bool { return equalGeneric(a, b) }

// Compare returns -1, 0 or +1 ordering a against b by the first differing
// word in native byte order.
func Compare(a, b *[Size]byte) int { return compareGeneric(a, b) }
