// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"errors"

	"github.com/optwire/optwire/pkg/opt"
	"github.com/optwire/optwire/pkg/store"
)

// ErrSuppress is returned by a handler to accept a match without storing any
// value for it.
var ErrSuppress = errors.New("suppress stored value")

// Context is passed to a handler on each match. It carries the matched
// option, the raw input, the decoded candidate value, and a mutable view of
// the live option set and value store.
type Context struct {
	// Opt is the matched option.
	Opt *opt.Opt

	// Raw is the raw token or value that produced the match. For boolean
	// flags it is the synthetic "true" or "false".
	Raw string

	// Value is the decoded candidate value. The handler's return value
	// replaces it in the store.
	Value any

	// NoaCount is the number of positional tokens seen at the time of the
	// match.
	NoaCount int

	// TotalTokens is the length of the full token sequence being parsed.
	TotalTokens int

	// Set and Store are the live option model and value store of the running
	// parse.
	Set   *opt.Set
	Store *store.Store
}

// Handler is a callback bound to one option uid. On a match it may return a
// replacement value (stored instead of ctx.Value), (nil, nil) to keep the
// decoded value, (nil, ErrSuppress) to store nothing, or any other error to
// abort the parse.
type Handler func(ctx *Context) (any, error)

// HandlerAbortedError wraps a handler error that aborted a policy pass.
type HandlerAbortedError struct {
	Uid  opt.Uid
	Name string
	Err  error
}

func (e *HandlerAbortedError) Error() string {
	return "handler for option " + e.Name + " aborted parse: " + e.Err.Error()
}

func (e *HandlerAbortedError) Unwrap() error { return e.Err }

// Invoker is the registry of handlers keyed by option uid.
type Invoker struct {
	handlers map[opt.Uid]Handler
}

// NewInvoker returns an empty handler registry.
func NewInvoker() *Invoker {
	return &Invoker{handlers: make(map[opt.Uid]Handler)}
}

// Register binds a handler to an option uid, replacing any previous one.
func (inv *Invoker) Register(uid opt.Uid, h Handler) {
	inv.handlers[uid] = h
}

// Handler returns the handler bound to uid, or nil.
func (inv *Invoker) Handler(uid opt.Uid) Handler {
	return inv.handlers[uid]
}
