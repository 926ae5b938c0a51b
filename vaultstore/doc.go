// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vaultstore - persistent vaults with a single writer
//
// each operation loads a vault record, applies the ledger operation to
// an in-memory copy and commits the new record together with a journal
// entry in one transaction; a failed operation writes nothing
package vaultstore
