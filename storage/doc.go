// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. vault        = vault account (32 byte ed25519 public key)
// 4. count        = successive index value as big endian uint64 (8 bytes)
// 5. *others*     = byte values of various length
//
// Vaults:
//
//   V ++ vault                 - vault state
//                                data: owner ++ shares total(LE) ++ token total(LE)
//
// Journal:
//
//   N ++ vault                 - next count value to use for appending to the journal
//                                data: count
//   J ++ vault ++ count        - applied operations in order
//                                data: operation ++ amount ++ result ++ shares total ++ token total
//
// Testing:
//   Z ++ key                   - testing data
package storage
