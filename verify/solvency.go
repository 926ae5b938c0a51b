// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify

import (
	"github.com/bitmark-inc/vaultd/vault"
)

// NondetLedger - a ledger with arbitrary totals
func NondetLedger(env *Env) vault.Ledger {
	return vault.New(env.Nondet(), env.Nondet())
}

// SolvencyRules - the ledger solvency rules
func SolvencyRules() []Rule {
	return []Rule{
		{Name: "deposit_solvency", Check: ruleDepositSolvency},
		{Name: "withdraw_solvency", Check: ruleWithdrawSolvency},
		{Name: "reward_solvency", Check: ruleRewardSolvency},
		{Name: "guarded_slash_solvency", Check: ruleGuardedSlashSolvency},
		{Name: "slash_can_break_solvency", Check: ruleSlashCanBreakSolvency},
		{Name: "deposit_at_parity", Check: ruleDepositAtParity},
		{Name: "withdraw_at_parity", Check: ruleWithdrawAtParity},
	}
}

func ruleDepositSolvency(env *Env) {
	ledger := NondetLedger(env)
	env.Assume(ledger.IsSolvent())

	before := ledger
	_, err := ledger.Deposit(env.Nondet())

	env.Assert(ledger.IsSolvent(), "deposit left ledger insolvent")
	if nil != err {
		env.Assert(before == ledger, "failed deposit changed ledger")
	}
}

func ruleWithdrawSolvency(env *Env) {
	ledger := NondetLedger(env)
	env.Assume(ledger.IsSolvent())

	before := ledger
	shares := env.Nondet()
	tokens, err := ledger.Withdraw(shares)

	env.Assert(ledger.IsSolvent(), "withdraw left ledger insolvent")
	if nil != err {
		env.Assert(before == ledger, "failed withdraw changed ledger")
		return
	}
	env.Assert(tokens >= shares, "withdraw released fewer tokens than shares from a solvent pool")
	env.Assert(before.TokenTotal-ledger.TokenTotal == tokens, "withdraw released a different amount than it removed")
}

func ruleRewardSolvency(env *Env) {
	ledger := NondetLedger(env)
	env.Assume(ledger.IsSolvent())

	before := ledger
	err := ledger.Reward(env.Nondet())

	env.Assert(ledger.IsSolvent(), "reward left ledger insolvent")
	env.Assert(ledger.SharesTotal == before.SharesTotal, "reward changed shares")
	if nil != err {
		env.Assert(before == ledger, "failed reward changed ledger")
	}
}

func ruleGuardedSlashSolvency(env *Env) {
	ledger := NondetLedger(env)
	env.Assume(ledger.IsSolvent())

	before := ledger
	err := ledger.SlashSolvent(env.Nondet())

	env.Assert(ledger.IsSolvent(), "guarded slash left ledger insolvent")
	if nil != err {
		env.Assert(before == ledger, "failed slash changed ledger")
	}
}

// slash is the one transition that can break solvency
func ruleSlashCanBreakSolvency(env *Env) {
	ledger := NondetLedger(env)
	env.Assume(ledger.IsSolvent())

	err := ledger.Slash(env.Nondet())
	env.Satisfy(nil == err && !ledger.IsSolvent())
}

func ruleDepositAtParity(env *Env) {
	total := env.Nondet()
	ledger := vault.New(total, total)

	tkn := env.Nondet()
	shares, err := ledger.Deposit(tkn)
	if nil != err {
		return
	}
	env.Assert(shares == tkn, "deposit at parity did not issue one share per token")
	env.Assert(ledger == vault.New(total+tkn, total+tkn), "deposit at parity gave wrong totals")
}

func ruleWithdrawAtParity(env *Env) {
	total := env.Nondet()
	ledger := vault.New(total, total)

	shares := env.Nondet()
	env.Assume(shares <= total)

	tokens, err := ledger.Withdraw(shares)
	env.Assert(nil == err, "withdraw at parity failed")
	env.Assert(tokens == shares, "withdraw at parity did not release one token per share")
	env.Assert(ledger == vault.New(total-shares, total-shares), "withdraw at parity gave wrong totals")
}
