// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse drives the matching pipeline: a policy consumes the argument
// cursor, classifies tokens, matches them against the option set, writes the
// value store, invokes registered handlers and validates the outcome. The
// four policies share one state machine and differ only in consumption order
// and partiality.
package parse

import "fmt"

// State is the shared policy state machine. Done and Failed are terminal.
type State int

const (
	Idle State = iota
	Scanning
	Matching
	Checking
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Scanning:
		return "scanning"
	case Matching:
		return "matching"
	case Checking:
		return "checking"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether the state ends a policy pass.
func (s State) Terminal() bool { return s == Done || s == Failed }

// Policy is a pluggable consumption strategy for one parse pass.
type Policy interface {
	// Name identifies the policy ("fwd", "delay", "pre", "seq").
	Name() string

	run(s *session) error
}

var (
	// Forward matches and dispatches named options in token order first,
	// then positional options, then Main.
	Forward Policy = forwardPolicy{}

	// Delay inverts Forward: positional matching and dispatch happen before
	// named-option dispatch, so a positional keyword can influence how later
	// flags are handled.
	Delay Policy = delayPolicy{}

	// Pre is Forward with partial consumption: the first unrecognized token
	// stops the pass and the remainder is returned in the Outcome instead of
	// failing. The consumed portion is still validated; only named-option
	// requiredness is skipped when a stop point exists.
	Pre Policy = prePolicy{}

	// Seq processes every token, positional or prefixed, strictly in
	// original order in a single pass.
	Seq Policy = seqPolicy{}
)

// PolicyByName resolves a policy name as used by configuration and the
// command line.
func PolicyByName(name string) (Policy, error) {
	switch name {
	case "fwd", "forward":
		return Forward, nil
	case "delay":
		return Delay, nil
	case "pre", "partial":
		return Pre, nil
	case "seq", "sequential":
		return Seq, nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}
