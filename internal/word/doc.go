// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package word implements the chunked 32-byte comparator.
//
// Both operations walk the operands as four 8-byte native-endian words at
// offsets 0, 8, 16 and 24, in that order, and stop at the first differing
// word. Equal and Compare are selected once per build: direct unsafe word
// loads on ports where unaligned loads are safe (word_fast.go), and a
// portable encoding/binary rendition everywhere else or under the purego
// tag (word_purego.go). The portable code always compiles on every port so
// the two variants can be checked against each other in one test binary.
package word
