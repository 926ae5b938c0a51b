// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/vaultd/fault"
)

var (
	ErrArithmeticOne = fault.ArithmeticError("arithmetic one")
	ErrArithmeticTwo = fault.ArithmeticError("arithmetic two")
	ErrExistsOne     = fault.ExistsError("exists one ")
	ErrExistsTwo     = fault.ExistsError("exists two")
	ErrInvalidOne    = fault.InvalidError("invalid one")
	ErrInvalidTwo    = fault.InvalidError("invalid two")
	ErrLengthOne     = fault.LengthError("length one")
	ErrLengthTwo     = fault.LengthError("length two")
	ErrNotFoundOne   = fault.NotFoundError("not found one")
	ErrNotFoundTwo   = fault.NotFoundError("not found two")
	ErrProcessOne    = fault.ProcessError("process one")
	ErrProcessTwo    = fault.ProcessError("process two")
)

// test that the various error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err        error
		arithmetic bool
		exists     bool
		invalid    bool
		length     bool
		notFound   bool
		process    bool
	}{
		{ErrArithmeticOne, true, false, false, false, false, false},
		{ErrArithmeticTwo, true, false, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false, false},
		{ErrExistsTwo, false, true, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false},
		{ErrLengthOne, false, false, false, true, false, false},
		{ErrLengthTwo, false, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrArithmetic(err) != e.arithmetic {
			t.Errorf("%d: expected 'arithmetic' == %v for err = %v", i, e.arithmetic, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// ledger errors must stay distinct single instances
func TestLedgerErrorsAreDistinct(t *testing.T) {
	ledgerErrors := []error{
		fault.ErrInvalidAmount,
		fault.ErrOverflow,
		fault.ErrUnderflow,
		fault.ErrDivisionByZero,
	}
	for i, a := range ledgerErrors {
		for j, b := range ledgerErrors {
			if (i == j) != (a == b) {
				t.Errorf("%d/%d: comparison mismatch: %v  %v", i, j, a, b)
			}
		}
	}
	if !fault.IsErrInvalid(fault.ErrInvalidAmount) {
		t.Errorf("invalid amount is not in the invalid class")
	}
	for _, err := range ledgerErrors[1:] {
		if !fault.IsErrArithmetic(err) {
			t.Errorf("%v is not in the arithmetic class", err)
		}
	}
}
