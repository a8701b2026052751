// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store accumulates the raw and decoded values matched for each
// option during a parse. Single-arity options overwrite on every match,
// multi-arity options append in match order.
package store

import (
	"github.com/optwire/optwire/pkg/opt"
)

type entry struct {
	raws []string
	vals []any
}

// Store maps option uids to their accumulated values for one parse run (or
// across runs, when the parser is in cumulative mode).
type Store struct {
	entries  map[opt.Uid]*entry
	decoders map[opt.Uid]Decoder
}

// New returns an empty store.
func New() *Store {
	return &Store{
		entries:  make(map[opt.Uid]*entry),
		decoders: make(map[opt.Uid]Decoder),
	}
}

// RegisterDecoder installs a caller-supplied decoder for one option,
// replacing the built-in decoder selected by the option's kind. Decoders
// survive Reset.
func (s *Store) RegisterDecoder(uid opt.Uid, dec Decoder) {
	s.decoders[uid] = dec
}

// Decode turns raw into a typed value per the option's kind or its custom
// decoder, without recording it.
func (s *Store) Decode(o *opt.Opt, raw string) (any, error) {
	if dec, ok := s.decoders[o.Uid()]; ok {
		v, err := dec(raw)
		if err != nil {
			return nil, &DecodeError{Uid: o.Uid(), Name: o.Name(), Kind: o.Kind(), Raw: raw, Err: err}
		}
		return v, nil
	}
	return decodeKind(o, raw)
}

// Put decodes raw per the option's kind (or its custom decoder) and records
// it. It returns the decoded value, or a *DecodeError naming the option and
// input.
func (s *Store) Put(o *opt.Opt, raw string) (any, error) {
	v, err := s.Decode(o, raw)
	if err != nil {
		return nil, err
	}
	s.put(o, raw, v)
	return v, nil
}

// PutBool records a synthetic boolean for a flag match. No decoding happens;
// a boolean flag has no raw token value of its own.
func (s *Store) PutBool(o *opt.Opt, v bool) {
	raw := "false"
	if v {
		raw = "true"
	}
	s.put(o, raw, v)
}

// PutVal records an already-decoded value, used when a handler replaces the
// stored value for its option.
func (s *Store) PutVal(o *opt.Opt, raw string, v any) {
	s.put(o, raw, v)
}

func (s *Store) put(o *opt.Opt, raw string, v any) {
	e := s.entries[o.Uid()]
	if e == nil {
		e = &entry{}
		s.entries[o.Uid()] = e
	}
	if o.Multiple() {
		e.raws = append(e.raws, raw)
		e.vals = append(e.vals, v)
	} else {
		e.raws = []string{raw}
		e.vals = []any{v}
	}
}

// Get returns the current value for uid: the single stored value, or the most
// recent one for multi-arity options.
func (s *Store) Get(uid opt.Uid) (any, bool) {
	e := s.entries[uid]
	if e == nil || len(e.vals) == 0 {
		return nil, false
	}
	return e.vals[len(e.vals)-1], true
}

// Vals returns every stored value for uid in match order.
func (s *Store) Vals(uid opt.Uid) []any {
	e := s.entries[uid]
	if e == nil {
		return nil
	}
	return e.vals
}

// Raws returns every raw input recorded for uid in match order.
func (s *Store) Raws(uid opt.Uid) []string {
	e := s.entries[uid]
	if e == nil {
		return nil
	}
	return e.raws
}

// Has reports whether any value was recorded for uid.
func (s *Store) Has(uid opt.Uid) bool {
	e := s.entries[uid]
	return e != nil && len(e.vals) > 0
}

// Take returns the current value for uid and removes the entry.
func (s *Store) Take(uid opt.Uid) (any, bool) {
	v, ok := s.Get(uid)
	if ok {
		delete(s.entries, uid)
	}
	return v, ok
}

// Drop removes the entry for uid, if any.
func (s *Store) Drop(uid opt.Uid) {
	delete(s.entries, uid)
}

// Reset clears all recorded values. Registered custom decoders are kept.
func (s *Store) Reset() {
	s.entries = make(map[opt.Uid]*entry)
}
