// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"github.com/optwire/optwire/pkg/args"
	"github.com/optwire/optwire/pkg/opt"
)

// forwardPolicy scans the whole cursor dispatching named options as it finds
// them, matches positional tokens afterwards, and dispatches Main last.
type forwardPolicy struct{}

func (forwardPolicy) Name() string { return "fwd" }

func (forwardPolicy) run(s *session) error {
	if err := s.applyDefaults(); err != nil {
		return err
	}
	if _, err := s.scan(false, false); err != nil {
		return err
	}
	if err := s.matchNOA(); err != nil {
		return err
	}
	if err := s.dispatchMain(); err != nil {
		return err
	}
	return s.check()
}

// delayPolicy collects named matches during the scan and dispatches them only
// after the positional tokens, so positional handlers run first.
type delayPolicy struct{}

func (delayPolicy) Name() string { return "delay" }

func (delayPolicy) run(s *session) error {
	if err := s.applyDefaults(); err != nil {
		return err
	}
	pend, err := s.scan(true, false)
	if err != nil {
		return err
	}
	if err := s.matchNOA(); err != nil {
		return err
	}
	s.state = Matching
	for _, p := range pend {
		if err := s.dispatchPending(p); err != nil {
			return err
		}
	}
	if err := s.dispatchMain(); err != nil {
		return err
	}
	return s.check()
}

// prePolicy is forward matching that stops at the first unrecognized token
// and hands the remainder back in the Outcome. The checker still runs against
// the consumed portion: command keywords and positional completeness are
// always validated, and a fully consumed input is validated in full.
type prePolicy struct{}

func (prePolicy) Name() string { return "pre" }

func (prePolicy) run(s *session) error {
	if err := s.applyDefaults(); err != nil {
		return err
	}
	if _, err := s.scan(false, true); err != nil {
		return err
	}
	if err := s.matchNOA(); err != nil {
		return err
	}
	if err := s.dispatchMain(); err != nil {
		return err
	}
	if s.remainder == nil {
		// No stop point: nothing is hidden from validation.
		return s.check()
	}
	// Named-option requiredness is undecidable past the stop point, but the
	// consumed positional tokens are final.
	s.state = Checking
	if err := CheckPositional(s.set, s.st, len(s.noa)); err != nil {
		return s.fail(err)
	}
	s.state = Done
	return nil
}

// seqPolicy processes every token strictly in original order: named matching
// and positional index counting interleave exactly as tokens appear.
type seqPolicy struct{}

func (seqPolicy) Name() string { return "seq" }

func (seqPolicy) run(s *session) error {
	if err := s.applyDefaults(); err != nil {
		return err
	}
	s.state = Scanning
	cmdSeen := false
	for {
		i := s.args.Cur()
		tok, ok := s.args.Next()
		if !ok {
			break
		}
		if s.args.PastStop(i) {
			if err := s.seqNOA(tok, &cmdSeen); err != nil {
				return err
			}
			continue
		}
		t, stop := args.Classify(tok, s.prefixes, s.deactivate)
		if stop {
			s.args.MarkStop(i)
			continue
		}
		if t == nil {
			if err := s.seqNOA(tok, &cmdSeen); err != nil {
				return err
			}
			continue
		}
		s.state = Matching
		ms, consumed, err := s.resolve(t)
		if err != nil {
			return s.fail(err)
		}
		if ms == nil {
			return s.fail(&UnrecognizedTokenError{Token: tok})
		}
		if consumed {
			s.args.Skip(1)
		}
		for _, m := range ms {
			if err := s.dispatchPending(m); err != nil {
				return err
			}
		}
		s.state = Scanning
	}
	if err := s.dispatchMain(); err != nil {
		return err
	}
	return s.check()
}

// seqNOA matches one positional token in place. The total positional count is
// not yet known mid-pass, so index specs are evaluated against the running
// position and an upper-bound count: positions seen plus tokens left.
func (s *session) seqNOA(raw string, cmdSeen *bool) error {
	pos := len(s.noa)
	count := pos + 1 + len(s.args.Remaining())
	nt := noaTok{raw: raw}
	if pos == 0 && !*cmdSeen {
		for _, o := range s.set.Opts() {
			if o.Style() != opt.StyleCmd || !nameMatches(o, raw) {
				continue
			}
			if err := s.dispatchBool(o, true, count); err != nil {
				return err
			}
			nt.matched = true
			*cmdSeen = true
		}
	}
	for _, o := range s.set.Opts() {
		if o.Style() != opt.StylePos {
			continue
		}
		if !o.Index().Match(pos, count) {
			continue
		}
		if err := s.dispatchValue(o, raw, count); err != nil {
			return err
		}
		nt.matched = true
	}
	s.noa = append(s.noa, nt)
	return nil
}
