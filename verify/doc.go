// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package verify - check rules over non-deterministic inputs
//
// A rule draws arbitrary values from its Env, restricts them with
// Assume, then checks the outcome with Assert.  Run executes a rule
// many times and reports counter-examples.
//
//   Assume(false)   discards the execution
//   Assert(false)   records a failure and the values that produced it
//   Satisfy(cond)   asks for at least one execution reaching cond;
//                   within such a rule a failed Assert discards the
//                   execution instead of failing it
//
// A rule whose assumptions reject every execution is vacuous and does
// not pass.
package verify
