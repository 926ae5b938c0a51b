// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"math/bits"

	"github.com/bitmark-inc/vaultd/fault"
)

// MulDivFloor - compute floor(a * b / c)
//
// the product is held as 128 bits so it cannot overflow, the quotient
// must fit back into 64 bits
func MulDivFloor(a uint64, b uint64, c uint64) (uint64, error) {
	if 0 == c {
		return 0, fault.ErrDivisionByZero
	}

	hi, lo := bits.Mul64(a, b)

	// the quotient fits in 64 bits only when the high word is below the divisor
	if hi >= c {
		return 0, fault.ErrOverflow
	}

	quotient, _ := bits.Div64(hi, lo, c)
	return quotient, nil
}

// checked addition
func addU64(a uint64, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if 0 != carry {
		return 0, fault.ErrOverflow
	}
	return sum, nil
}

// checked subtraction
func subU64(a uint64, b uint64) (uint64, error) {
	difference, borrow := bits.Sub64(a, b, 0)
	if 0 != borrow {
		return 0, fault.ErrUnderflow
	}
	return difference, nil
}
