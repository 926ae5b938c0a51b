// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"fmt"

	"github.com/bitmark-inc/vaultd/fault"
)

// Ledger - pool wide totals
type Ledger struct {
	SharesTotal uint64 `json:"sharesTotal,string"`
	TokenTotal  uint64 `json:"tokenTotal,string"`
}

// New - ledger seeded with externally supplied totals
func New(sharesTotal uint64, tokenTotal uint64) Ledger {
	return Ledger{
		SharesTotal: sharesTotal,
		TokenTotal:  tokenTotal,
	}
}

// IsSolvent - true if every outstanding share can be redeemed
func (ledger Ledger) IsSolvent() bool {
	return ledger.SharesTotal <= ledger.TokenTotal
}

// String - for logging
func (ledger Ledger) String() string {
	return fmt.Sprintf("shares: %d  tokens: %d", ledger.SharesTotal, ledger.TokenTotal)
}

// Deposit - add tokens to the pool and issue shares for them
//
// returns the number of shares issued
func (ledger *Ledger) Deposit(tkn uint64) (uint64, error) {
	if 0 == tkn {
		return 0, fault.ErrInvalidAmount
	}

	shares := tkn
	if ledger.SharesTotal != ledger.TokenTotal {
		// TokenTotal can only be zero here if shares exist with no
		// tokens behind them, which is a corrupt pool
		s, err := MulDivFloor(tkn, ledger.TokenTotal, ledger.TokenTotal)
		if nil != err {
			return 0, err
		}
		shares = s
	}

	if 0 == shares {
		return 0, fault.ErrInvalidAmount
	}

	sharesTotal, err := addU64(ledger.SharesTotal, shares)
	if nil != err {
		return 0, err
	}
	tokenTotal, err := addU64(ledger.TokenTotal, tkn)
	if nil != err {
		return 0, err
	}

	err = ledger.commit(sharesTotal, tokenTotal)
	if nil != err {
		return 0, err
	}
	return shares, nil
}

// Withdraw - redeem shares for their proportion of the pool
//
// returns the number of tokens released, rounded down so the pool
// never pays out more than it owes
func (ledger *Ledger) Withdraw(shares uint64) (uint64, error) {

	// checked first so that an oversized request is always reported
	// as underflow, never as an overflow of the proportion
	sharesTotal, err := subU64(ledger.SharesTotal, shares)
	if nil != err {
		return 0, err
	}

	tokens := uint64(0)
	switch {
	case ledger.SharesTotal == ledger.TokenTotal:
		tokens = shares
	case 0 == shares:
		// SharesTotal may be zero here, so no proportion is taken
	default:
		// 0 < shares <= SharesTotal so the divisor is non-zero
		tokens, err = MulDivFloor(shares, ledger.TokenTotal, ledger.SharesTotal)
		if nil != err {
			return 0, err
		}
	}

	tokenTotal, err := subU64(ledger.TokenTotal, tokens)
	if nil != err {
		return 0, err
	}

	err = ledger.commit(sharesTotal, tokenTotal)
	if nil != err {
		return 0, err
	}
	return tokens, nil
}

// Reward - add yield to the pool without issuing shares
func (ledger *Ledger) Reward(tkn uint64) error {
	if 0 == tkn {
		return fault.ErrInvalidAmount
	}
	tokenTotal, err := addU64(ledger.TokenTotal, tkn)
	if nil != err {
		return err
	}
	ledger.TokenTotal = tokenTotal
	return nil
}

// Slash - remove tokens from the pool without retiring shares
//
// this can leave the ledger insolvent, bounding the amount is up to
// the caller
func (ledger *Ledger) Slash(tkn uint64) error {
	tokenTotal, err := subU64(ledger.TokenTotal, tkn)
	if nil != err {
		return err
	}
	ledger.TokenTotal = tokenTotal
	return nil
}

// SlashSolvent - slash, but refuse any amount that would leave the
// ledger insolvent
func (ledger *Ledger) SlashSolvent(tkn uint64) error {
	tokenTotal, err := subU64(ledger.TokenTotal, tkn)
	if nil != err {
		return err
	}
	if ledger.SharesTotal > tokenTotal {
		return fault.ErrInsolvent
	}
	ledger.TokenTotal = tokenTotal
	return nil
}

// store a candidate state, a solvent ledger must stay solvent
func (ledger *Ledger) commit(sharesTotal uint64, tokenTotal uint64) error {
	if ledger.IsSolvent() && sharesTotal > tokenTotal {
		return fault.ErrInsolvent
	}
	ledger.SharesTotal = sharesTotal
	ledger.TokenTotal = tokenTotal
	return nil
}
