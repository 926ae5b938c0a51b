// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vault - proportional share accounting
//
// A Ledger tracks two pool wide counters: the shares issued against
// the pool and the tokens the pool holds.  Four transitions change
// them: Deposit, Withdraw, Reward and Slash.
//
// Solvency: SharesTotal <= TokenTotal.  Deposit and Withdraw refuse to
// turn a solvent ledger into an insolvent one, Reward can only
// strengthen solvency and Slash is the single transition able to break
// it (use SlashSolvent to refuse that).
//
// Every transition computes the complete candidate state before
// assigning it, so a failed call leaves the ledger exactly as it was.
//
// A Ledger has no locking; callers sharing one must serialise access.
package vault
