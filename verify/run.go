// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify

import (
	"fmt"
	"math/rand"
)

const defaultIterations = 1000

// Rule - a named check
type Rule struct {
	Name  string
	Check func(env *Env)
}

// Options - controls for Run
type Options struct {
	Iterations int
	Seed       int64
}

// Report - outcome of running one rule
type Report struct {
	Name             string   `json:"name"`
	Executions       int      `json:"executions"`
	Rejected         int      `json:"rejected"`
	Failures         int      `json:"failures"`
	Message          string   `json:"message,omitempty"`
	CounterExample   []uint64 `json:"counterExample,omitempty"`
	SatisfyRequested bool     `json:"satisfyRequested"`
	Satisfied        bool     `json:"satisfied"`
}

// Vacuous - true if no execution got past the assumptions
func (report *Report) Vacuous() bool {
	return report.Executions > 0 && report.Rejected == report.Executions
}

// Passed - no failures, not vacuous and any Satisfy was reached
func (report *Report) Passed() bool {
	if 0 != report.Failures || report.Vacuous() {
		return false
	}
	if report.SatisfyRequested && !report.Satisfied {
		return false
	}
	return true
}

// String - one line summary
func (report *Report) String() string {
	status := "passed"
	switch {
	case report.Vacuous():
		status = "vacuous"
	case 0 != report.Failures:
		status = fmt.Sprintf("FAILED: %s  counter-example: %v", report.Message, report.CounterExample)
	case report.SatisfyRequested && !report.Satisfied:
		status = "not satisfied"
	}
	return fmt.Sprintf("%s: %s (executions: %d  rejected: %d  failures: %d)",
		report.Name, status, report.Executions, report.Rejected, report.Failures)
}

// Run - execute a rule repeatedly with fresh non-deterministic inputs
func Run(rule Rule, options Options) *Report {
	iterations := options.Iterations
	if iterations <= 0 {
		iterations = defaultIterations
	}

	random := rand.New(rand.NewSource(options.Seed))

	report := &Report{
		Name: rule.Name,
	}

	for i := 0; i < iterations; i += 1 {
		env := newEnv(random)
		rejected := execute(rule, env)

		report.Executions += 1

		// with a satisfy present, asserts act as assumptions
		if !rejected && env.satisfyCalled && 0 != len(env.failures) {
			rejected = true
		}

		if env.satisfyCalled {
			report.SatisfyRequested = true
		}

		if rejected {
			report.Rejected += 1
			continue
		}

		if env.satisfyReached {
			report.Satisfied = true
		}

		if 0 != len(env.failures) {
			if 0 == report.Failures {
				report.Message = env.failures[0]
				report.CounterExample = env.Values()
			}
			report.Failures += 1
		}
	}

	return report
}

// RunAll - run a set of rules with the same options
func RunAll(rules []Rule, options Options) []*Report {
	reports := make([]*Report, 0, len(rules))
	for _, rule := range rules {
		reports = append(reports, Run(rule, options))
	}
	return reports
}

// run a single execution, returns true if it was rejected
func execute(rule Rule, env *Env) (rejected bool) {
	defer func() {
		if r := recover(); nil != r {
			if _, ok := r.(rejection); !ok {
				panic(r)
			}
			rejected = true
		}
	}()
	rule.Check(env)
	return false
}
