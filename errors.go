// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package keycmp

import "errors"

var (
	// ErrInvalidLength reports an operand whose byte view is not exactly
	// Size bytes. It is returned before the comparator is reached; the
	// comparator itself never observes a short or long operand.
	ErrInvalidLength = errors.New("keycmp: view is not 32 bytes")
)
