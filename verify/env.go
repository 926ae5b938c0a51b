// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify

import (
	"math"
	"math/rand"
)

// values drawn more often than chance would give them
var boundaryValues = []uint64{
	0,
	1,
	2,
	math.MaxUint64 / 2,
	math.MaxUint64 - 1,
	math.MaxUint64,
}

// upper limit of the small value range
const smallLimit = 1000

// Env - the non-deterministic inputs and checks of a single execution
type Env struct {
	random *rand.Rand
	values []uint64

	failures       []string
	satisfyCalled  bool
	satisfyReached bool
}

// raised by Assume to abandon an execution
type rejection struct{}

func newEnv(random *rand.Rand) *Env {
	return &Env{
		random: random,
		values: make([]uint64, 0, 8),
	}
}

// Nondet - an arbitrary 64 bit value
func (env *Env) Nondet() uint64 {
	var n uint64
	switch env.random.Intn(4) {
	case 0:
		n = boundaryValues[env.random.Intn(len(boundaryValues))]
	case 1:
		n = uint64(env.random.Intn(smallLimit))
	default:
		n = env.random.Uint64()
	}
	env.values = append(env.values, n)
	return n
}

// NondetBool - an arbitrary boolean
func (env *Env) NondetBool() bool {
	b := 0 != env.random.Intn(2)
	if b {
		env.values = append(env.values, 1)
	} else {
		env.values = append(env.values, 0)
	}
	return b
}

// Assume - discard this execution unless condition holds
func (env *Env) Assume(condition bool) {
	if !condition {
		panic(rejection{})
	}
}

// Assert - record a failure unless condition holds
func (env *Env) Assert(condition bool, message string) {
	if !condition {
		env.failures = append(env.failures, message)
	}
}

// Satisfy - note whether this execution reached condition
func (env *Env) Satisfy(condition bool) {
	env.satisfyCalled = true
	if condition {
		env.satisfyReached = true
	}
}

// Values - all values drawn so far in this execution
func (env *Env) Values() []uint64 {
	v := make([]uint64, len(env.values))
	copy(v, env.values)
	return v
}
