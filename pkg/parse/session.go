// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"errors"

	"github.com/optwire/optwire/pkg/args"
	"github.com/optwire/optwire/pkg/opt"
	"github.com/optwire/optwire/pkg/store"
)

// noaTok is one positional (non-option) token accumulated during a scan, in
// original relative order.
type noaTok struct {
	raw     string
	matched bool
}

// pending is a resolved named-option match whose dispatch may be deferred
// (the Delay policy dispatches positionals first).
type pending struct {
	o        *opt.Opt
	raw      string
	boolVal  *bool
	noaCount int
}

// session is the mutable state of one policy pass. A pass runs to completion
// on the calling goroutine; nothing here is shared.
type session struct {
	set        *opt.Set
	st         *store.Store
	inv        *Invoker
	args       *args.Args
	prefixes   []string
	deactivate string

	state     State
	matched   []opt.Uid
	noa       []noaTok
	remainder []string
}

func (s *session) fail(err error) error {
	s.state = Failed
	return err
}

// applyDefaults seeds declared default values for options that have none
// stored. Handlers are not invoked for defaults.
func (s *session) applyDefaults() error {
	for _, o := range s.set.Opts() {
		def, ok := o.Default()
		if !ok || s.st.Has(o.Uid()) {
			continue
		}
		v, err := s.st.Decode(o, def)
		if err != nil {
			return s.fail(err)
		}
		s.st.PutVal(o, def, v)
	}
	return nil
}

// invoke runs the handler flow for one match: the handler may replace the
// candidate value, suppress storage, or abort the pass. Without a handler the
// candidate value is stored as is.
func (s *session) invoke(o *opt.Opt, raw string, val any, noaCount int) error {
	if h := s.inv.Handler(o.Uid()); h != nil {
		ctx := &Context{
			Opt:         o,
			Raw:         raw,
			Value:       val,
			NoaCount:    noaCount,
			TotalTokens: s.args.Len(),
			Set:         s.set,
			Store:       s.st,
		}
		out, err := h(ctx)
		switch {
		case errors.Is(err, ErrSuppress):
			s.matched = append(s.matched, o.Uid())
			return nil
		case err != nil:
			return s.fail(&HandlerAbortedError{Uid: o.Uid(), Name: o.Name(), Err: err})
		case out != nil:
			val = out
		}
	}
	s.st.PutVal(o, raw, val)
	s.matched = append(s.matched, o.Uid())
	return nil
}

// dispatchValue decodes raw for o and runs the handler flow.
func (s *session) dispatchValue(o *opt.Opt, raw string, noaCount int) error {
	val, err := s.st.Decode(o, raw)
	if err != nil {
		return s.fail(err)
	}
	return s.invoke(o, raw, val, noaCount)
}

// dispatchBool records a synthetic boolean for a flag or command match.
func (s *session) dispatchBool(o *opt.Opt, v bool, noaCount int) error {
	raw := "false"
	if v {
		raw = "true"
	}
	return s.invoke(o, raw, v, noaCount)
}

// dispatchPending replays a deferred named match.
func (s *session) dispatchPending(p pending) error {
	if p.boolVal != nil {
		return s.dispatchBool(p.o, *p.boolVal, p.noaCount)
	}
	return s.dispatchValue(p.o, p.raw, p.noaCount)
}

// dispatchMain invokes the main-style handler exactly once with the final
// aggregated state. A main option without a handler is a no-op.
func (s *session) dispatchMain() error {
	main := s.set.Main()
	if main == nil {
		return nil
	}
	if s.inv.Handler(main.Uid()) == nil {
		return nil
	}
	return s.invoke(main, "", nil, len(s.noa))
}

// resolve matches one classified token against the option set. It returns the
// concrete matches (several for a combined token), whether the next raw token
// was consumed as a value, or (nil, false, nil) when nothing matched.
//
// Attempt order: inline "=" value, exact name, fused single-letter value,
// combined booleans, unique abbreviation. Exact-name matches therefore take
// priority over partial ones; ambiguous abbreviations are a hard failure.
func (s *session) resolve(t *args.Token) ([]pending, bool, error) {
	full := t.Prefix + t.Name
	noaCount := len(s.noa)

	if t.Value != nil {
		o := s.set.Find(full)
		if o == nil {
			var err error
			o, err = s.set.FindAbbrev(full)
			if err != nil {
				return nil, false, err
			}
		}
		if o == nil || t.Deactivate {
			return nil, false, nil
		}
		switch o.Style() {
		case opt.StyleBoolean, opt.StyleArgument:
			return []pending{{o: o, raw: *t.Value, noaCount: noaCount}}, false, nil
		}
		return nil, false, nil
	}

	if o := s.set.Find(full); o != nil {
		return s.resolveNamed(o, t, noaCount)
	}

	// Fused single-letter value, e.g. "-i42" for an argument option "-i".
	if len(t.Name) >= 2 && !t.Deactivate {
		if o := s.set.Find(t.Prefix + t.Name[:1]); o != nil && o.Style() == opt.StyleArgument {
			return []pending{{o: o, raw: t.Name[1:], noaCount: noaCount}}, false, nil
		}
	}

	// Combined booleans, e.g. "-abc" setting "-a", "-b" and "-c".
	if len(t.Name) > 1 {
		var ms []pending
		for _, c := range t.Name {
			o := s.set.Find(t.Prefix + string(c))
			if o == nil || o.Style() != opt.StyleBoolean {
				ms = nil
				break
			}
			v := !t.Deactivate
			ms = append(ms, pending{o: o, boolVal: &v, noaCount: noaCount})
		}
		if ms != nil {
			return ms, false, nil
		}
	}

	o, err := s.set.FindAbbrev(full)
	if err != nil {
		return nil, false, err
	}
	if o != nil {
		return s.resolveNamed(o, t, noaCount)
	}
	return nil, false, nil
}

// resolveNamed builds the match for a name that resolved to a declared
// option. Argument-style options consume the following token as their value.
func (s *session) resolveNamed(o *opt.Opt, t *args.Token, noaCount int) ([]pending, bool, error) {
	switch o.Style() {
	case opt.StyleBoolean:
		v := !t.Deactivate
		return []pending{{o: o, boolVal: &v, noaCount: noaCount}}, false, nil
	case opt.StyleArgument:
		if t.Deactivate {
			return nil, false, nil
		}
		next, ok := s.args.Peek()
		if !ok {
			return nil, false, &MissingValueError{Uid: o.Uid(), Name: o.Name()}
		}
		return []pending{{o: o, raw: next, noaCount: noaCount}}, true, nil
	default:
		// Positional styles declared with a prefix never match by name.
		return nil, false, nil
	}
}

// scan walks the whole cursor classifying every token. Named matches are
// dispatched immediately, or collected when collect is set. Positional tokens
// accumulate in s.noa. Under partial mode an unrecognized prefixed token
// stops the scan and the rest of the cursor becomes the remainder.
func (s *session) scan(collect, partial bool) ([]pending, error) {
	s.state = Scanning
	var pend []pending
	for {
		i := s.args.Cur()
		tok, ok := s.args.Next()
		if !ok {
			break
		}
		if s.args.PastStop(i) {
			s.noa = append(s.noa, noaTok{raw: tok})
			continue
		}
		t, stop := args.Classify(tok, s.prefixes, s.deactivate)
		if stop {
			s.args.MarkStop(i)
			continue
		}
		if t == nil {
			s.noa = append(s.noa, noaTok{raw: tok})
			continue
		}
		s.state = Matching
		ms, consumed, err := s.resolve(t)
		if err != nil {
			return pend, s.fail(err)
		}
		if ms == nil {
			if partial {
				s.remainder = append([]string{tok}, s.args.Remaining()...)
				return pend, nil
			}
			return pend, s.fail(&UnrecognizedTokenError{Token: tok})
		}
		if consumed {
			s.args.Skip(1)
		}
		for _, m := range ms {
			if collect {
				pend = append(pend, m)
				continue
			}
			if err := s.dispatchPending(m); err != nil {
				return pend, err
			}
		}
		s.state = Scanning
	}
	return pend, nil
}

// matchNOA matches accumulated positional tokens against command keywords and
// positional index specs, renumbered zero based excluding consumed prefixed
// tokens, and dispatches in uid order per slot.
func (s *session) matchNOA() error {
	s.state = Matching
	count := len(s.noa)
	if count > 0 {
		for _, o := range s.set.Opts() {
			if o.Style() != opt.StyleCmd {
				continue
			}
			if !nameMatches(o, s.noa[0].raw) {
				continue
			}
			if err := s.dispatchBool(o, true, count); err != nil {
				return err
			}
			s.noa[0].matched = true
		}
	}
	for i := range s.noa {
		for _, o := range s.set.Opts() {
			if o.Style() != opt.StylePos {
				continue
			}
			if !o.Index().Match(i, count) {
				continue
			}
			if err := s.dispatchValue(o, s.noa[i].raw, count); err != nil {
				return err
			}
			s.noa[i].matched = true
		}
	}
	return nil
}

func nameMatches(o *opt.Opt, raw string) bool {
	for _, n := range o.Names() {
		if n == raw {
			return true
		}
	}
	return false
}

// check runs the post-pass validator and moves the session to a terminal
// state.
func (s *session) check() error {
	s.state = Checking
	if err := Check(s.set, s.st, len(s.noa)); err != nil {
		return s.fail(err)
	}
	s.state = Done
	return nil
}

// remaining returns the unconsumed trailing tokens: positional tokens no
// index spec claimed, in original order, followed by anything past a partial
// stop point.
func (s *session) remaining() []string {
	var out []string
	for _, nt := range s.noa {
		if !nt.matched {
			out = append(out, nt.raw)
		}
	}
	return append(out, s.remainder...)
}
