// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vaultd/fault"
)

func TestMulDivFloor(t *testing.T) {
	items := []struct {
		a        uint64
		b        uint64
		c        uint64
		expected uint64
		err      error
	}{
		{0, 0, 1, 0, nil},
		{7, 3, 2, 10, nil},
		{100, 150, 100, 150, nil},
		{1, 2, 3, 0, nil},
		{math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64, nil},
		{math.MaxUint64, 2, 2, math.MaxUint64, nil},
		{math.MaxUint64, 3, 4, 13835058055282163711, nil},
		{1 << 63, 4, 3, 12297829382473034410, nil},
		{1 << 63, 4, 1, 0, fault.ErrOverflow},
		{math.MaxUint64, 2, 1, 0, fault.ErrOverflow},
		{5, 5, 0, 0, fault.ErrDivisionByZero},
		{0, 0, 0, 0, fault.ErrDivisionByZero},
	}

	for i, item := range items {
		actual, err := MulDivFloor(item.a, item.b, item.c)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Equal(t, item.expected, actual, "%d: wrong result", i)
	}
}

func TestCheckedAdd(t *testing.T) {
	sum, err := addU64(math.MaxUint64-1, 1)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, uint64(math.MaxUint64), sum, "wrong sum")

	_, err = addU64(math.MaxUint64, 1)
	assert.Equal(t, fault.ErrOverflow, err, "wrong error")
}

func TestCheckedSub(t *testing.T) {
	difference, err := subU64(10, 10)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, uint64(0), difference, "wrong difference")

	_, err = subU64(10, 11)
	assert.Equal(t, fault.ErrUnderflow, err, "wrong error")
}
