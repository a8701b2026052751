// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"fmt"

	"github.com/optwire/optwire/pkg/args"
	"github.com/optwire/optwire/pkg/opt"
	"github.com/optwire/optwire/pkg/store"
)

// Outcome is the result of one policy run. It is returned alongside the
// error even on failure: the store contents written so far stay visible for
// diagnostics.
type Outcome struct {
	// Matched lists the uids of matched options in invocation order.
	Matched []opt.Uid

	// Remaining holds the unconsumed trailing tokens: positional tokens no
	// index spec claimed, plus everything past a partial stop point.
	Remaining []string

	// OK reports whether the pass reached Done.
	OK bool

	// State is the terminal policy state (Done or Failed).
	State State
}

// Parser binds one option set, one handler registry and one value store to a
// consumption policy. A single parse runs strictly sequentially; independent
// Parser instances share no state and may run on separate goroutines.
type Parser struct {
	set        *opt.Set
	inv        *Invoker
	st         *store.Store
	policy     Policy
	prefixes   []string
	deactivate string
	cumulative bool
}

// NewParser returns a parser over set using the given policy.
func NewParser(set *opt.Set, policy Policy) *Parser {
	return &Parser{
		set:    set,
		inv:    NewInvoker(),
		st:     store.New(),
		policy: policy,
	}
}

func (p *Parser) Set() *opt.Set        { return p.set }
func (p *Parser) Store() *store.Store  { return p.st }
func (p *Parser) Invoker() *Invoker    { return p.inv }
func (p *Parser) Policy() Policy       { return p.policy }

// SetPrefixes replaces the configured option prefixes (default "--", "-").
func (p *Parser) SetPrefixes(prefixes []string) { p.prefixes = prefixes }

// SetDeactivate replaces the boolean deactivation marker (default "/").
func (p *Parser) SetDeactivate(marker string) { p.deactivate = marker }

// SetCumulative keeps stored values across Parse calls instead of resetting
// the store at the start of each one.
func (p *Parser) SetCumulative(v bool) { p.cumulative = v }

// On registers a handler for the option declared under name or one of its
// aliases.
func (p *Parser) On(name string, h Handler) error {
	o := p.set.Find(name)
	if o == nil {
		return fmt.Errorf("no option named %q", name)
	}
	p.inv.Register(o.Uid(), h)
	return nil
}

// Parse runs one policy pass over tokens. The token sequence is single use;
// the store is reset first unless the parser is cumulative.
func (p *Parser) Parse(tokens []string) (*Outcome, error) {
	return p.parse(args.New(tokens))
}

// parse runs one policy pass over an already-built cursor. The dispatcher
// uses this to hand each attempt its own clone of one shared cursor.
func (p *Parser) parse(a *args.Args) (*Outcome, error) {
	if !p.cumulative {
		p.st.Reset()
	}
	s := &session{
		set:        p.set,
		st:         p.st,
		inv:        p.inv,
		args:       a,
		prefixes:   p.prefixes,
		deactivate: p.deactivate,
		state:      Idle,
	}
	err := p.policy.run(s)
	out := &Outcome{
		Matched:   s.matched,
		Remaining: s.remaining(),
		OK:        err == nil,
		State:     s.state,
	}
	return out, err
}

// Value returns the current stored value for the option declared under name
// or alias: the single value, or the most recent one for multi-arity
// options.
func (p *Parser) Value(name string) (any, bool) {
	o := p.set.Find(name)
	if o == nil {
		return nil, false
	}
	return p.st.Get(o.Uid())
}

// Vals returns every stored value for the named option in match order.
func (p *Parser) Vals(name string) []any {
	o := p.set.Find(name)
	if o == nil {
		return nil
	}
	return p.st.Vals(o.Uid())
}
