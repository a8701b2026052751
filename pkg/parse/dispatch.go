// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/optwire/optwire/pkg/args"
)

// AttemptError records why one registered parser rejected the input.
type AttemptError struct {
	Name string
	Err  error
}

// Dispatcher drives several independent parsers against the same input,
// trying each in registration order; the first one to finish Done wins. It
// is the sub-command router: each parser typically declares a command
// keyword plus its own flags.
type Dispatcher struct {
	names    []string
	parsers  []*Parser
	keepDiag bool
	diags    []AttemptError
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Register appends a named parser. Registration order is the attempt order
// and breaks ties in parallel dispatch.
func (d *Dispatcher) Register(name string, p *Parser) {
	d.names = append(d.names, name)
	d.parsers = append(d.parsers, p)
}

// KeepDiagnostics retains per-attempt failures for Diagnostics. By default
// individual parser errors are swallowed and only ErrNoMatch is reported.
func (d *Dispatcher) KeepDiagnostics(v bool) { d.keepDiag = v }

// Diagnostics returns the failures recorded during the last dispatch, if
// diagnostics retention is on.
func (d *Dispatcher) Diagnostics() []AttemptError { return d.diags }

// Dispatch tries each parser in registration order, handing each attempt its
// own clone of one shared cursor. It returns the winning parser's name and
// Outcome, or ErrNoMatch when every attempt failed.
func (d *Dispatcher) Dispatch(tokens []string) (string, *Outcome, error) {
	d.diags = nil
	a := args.New(tokens)
	for i, p := range d.parsers {
		out, err := p.parse(a.Clone())
		if err == nil {
			return d.names[i], out, nil
		}
		if d.keepDiag {
			d.diags = append(d.diags, AttemptError{Name: d.names[i], Err: err})
		}
	}
	return "", nil, ErrNoMatch
}

// DispatchParallel runs every attempt concurrently and still returns the
// first success in registration order. Each parser owns its set, store and
// cursor copy, so attempts share no mutable state; the registered parsers
// must be distinct instances.
func (d *Dispatcher) DispatchParallel(ctx context.Context, tokens []string) (string, *Outcome, error) {
	d.diags = nil
	outs := make([]*Outcome, len(d.parsers))
	errs := make([]error, len(d.parsers))

	g, ctx := errgroup.WithContext(ctx)
	a := args.New(tokens)
	for i, p := range d.parsers {
		i, p := i, p
		attempt := a.Clone()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			outs[i], errs[i] = p.parse(attempt)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", nil, err
	}
	for i := range d.parsers {
		if errs[i] == nil {
			return d.names[i], outs[i], nil
		}
		if d.keepDiag {
			d.diags = append(d.diags, AttemptError{Name: d.names[i], Err: errs[i]})
		}
	}
	return "", nil, ErrNoMatch
}
