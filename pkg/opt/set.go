// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"fmt"
	"sort"
	"strings"
)

// DuplicateAliasError is returned when a name or alias is registered twice
// within one Set.
type DuplicateAliasError struct {
	Name     string
	Existing Uid
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("duplicate option name %q (already registered as uid %d)", e.Name, e.Existing)
}

// AmbiguousMatchError is returned when a partial name matches more than one
// declared option.
type AmbiguousMatchError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("ambiguous option %q matches %s", e.Name, strings.Join(e.Candidates, ", "))
}

// Set holds the declared options of one parser. Options are registered before
// any parse begins and are structurally immutable afterwards.
type Set struct {
	opts    []*Opt
	byName  map[string]Uid
	mainUid Uid
}

// NewSet returns an empty option set.
func NewSet() *Set {
	return &Set{
		byName:  make(map[string]Uid),
		mainUid: InvalidUid,
	}
}

// AddOpt registers a new option from a spec string "name=code[!][@index]".
// The returned Opt may be adjusted (aliases, arity, default) until parsing
// starts. Names must be unique across the whole set, primary names and
// aliases alike.
func (s *Set) AddOpt(spec string) (*Opt, error) {
	o, err := parseSpec(spec)
	if err != nil {
		return nil, err
	}
	return o, s.Add(o)
}

// Add registers a pre-built option, assigning its uid.
func (s *Set) Add(o *Opt) error {
	if o.style == StyleNull {
		return fmt.Errorf("option %q has no style", o.name)
	}
	if existing, ok := s.byName[o.name]; ok {
		return &DuplicateAliasError{Name: o.name, Existing: existing}
	}
	if o.style == StyleMain && s.mainUid != InvalidUid {
		return fmt.Errorf("option %q: set already has a main option (uid %d)", o.name, s.mainUid)
	}
	o.uid = Uid(len(s.opts))
	s.opts = append(s.opts, o)
	s.byName[o.name] = o.uid
	if o.style == StyleMain {
		s.mainUid = o.uid
	}
	for _, alias := range o.aliases {
		if existing, ok := s.byName[alias]; ok {
			return &DuplicateAliasError{Name: alias, Existing: existing}
		}
		s.byName[alias] = o.uid
	}
	return nil
}

// AddAlias attaches an alias to a registered option. Aliases share the global
// name namespace of the set.
func (s *Set) AddAlias(uid Uid, alias string) error {
	o := s.Get(uid)
	if o == nil {
		return fmt.Errorf("no option with uid %d", uid)
	}
	if existing, ok := s.byName[alias]; ok {
		return &DuplicateAliasError{Name: alias, Existing: existing}
	}
	o.aliases = append(o.aliases, alias)
	s.byName[alias] = uid
	return nil
}

// Get returns the option with the given uid, or nil.
func (s *Set) Get(uid Uid) *Opt {
	if uid < 0 || int(uid) >= len(s.opts) {
		return nil
	}
	return s.opts[uid]
}

// Find returns the option declared under the exact name or alias, or nil.
func (s *Set) Find(name string) *Opt {
	if uid, ok := s.byName[name]; ok {
		return s.opts[uid]
	}
	return nil
}

// FindAbbrev resolves a possibly abbreviated name: an exact match wins, and a
// unique prefix of exactly one declared name is accepted. A prefix shared by
// several declared names is a hard failure.
func (s *Set) FindAbbrev(name string) (*Opt, error) {
	if o := s.Find(name); o != nil {
		return o, nil
	}
	var candidates []string
	var found *Opt
	uids := make(map[Uid]bool)
	for declared, uid := range s.byName {
		if strings.HasPrefix(declared, name) {
			candidates = append(candidates, declared)
			uids[uid] = true
			found = s.opts[uid]
		}
	}
	switch len(uids) {
	case 0:
		return nil, nil
	case 1:
		return found, nil
	default:
		sort.Strings(candidates)
		return nil, &AmbiguousMatchError{Name: name, Candidates: candidates}
	}
}

// Main returns the main-style option, or nil if none was registered.
func (s *Set) Main() *Opt {
	if s.mainUid == InvalidUid {
		return nil
	}
	return s.opts[s.mainUid]
}

// Len returns the number of registered options.
func (s *Set) Len() int { return len(s.opts) }

// Opts returns the registered options in uid order. The slice is shared;
// callers must not mutate it.
func (s *Set) Opts() []*Opt { return s.opts }
