// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"fmt"
	"strings"
)

// Uid identifies a declared option within one Set. Uids are assigned in
// registration order, strictly increasing, and never reused; default
// iteration and positional fallback follow uid order.
type Uid int

// InvalidUid is returned by lookups that found nothing.
const InvalidUid Uid = -1

// Kind tags how a raw token decodes into a stored value.
type Kind int

const (
	KindRaw Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindDuration
	KindUUID
	KindVersion
)

func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindDuration:
		return "duration"
	case KindUUID:
		return "uuid"
	case KindVersion:
		return "version"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// styleCodes maps the type letter of a spec string to style and value kind.
var styleCodes = map[string]struct {
	style Style
	kind  Kind
}{
	"b":    {StyleBoolean, KindBool},
	"i":    {StyleArgument, KindInt},
	"u":    {StyleArgument, KindUint},
	"f":    {StyleArgument, KindFloat},
	"s":    {StyleArgument, KindString},
	"d":    {StyleArgument, KindDuration},
	"r":    {StyleArgument, KindRaw},
	"uuid": {StyleArgument, KindUUID},
	"ver":  {StyleArgument, KindVersion},
	"p":    {StylePos, KindString},
	"c":    {StyleCmd, KindBool},
	"m":    {StyleMain, KindRaw},
}

// Opt is one declared option. Structure is fixed once parsing starts; only
// its Store entries mutate during a parse.
type Opt struct {
	uid      Uid
	name     string
	aliases  []string
	style    Style
	index    Index
	required bool
	multiple bool
	kind     Kind
	def      string
	hasDef   bool
}

func (o *Opt) Uid() Uid          { return o.uid }
func (o *Opt) Name() string      { return o.name }
func (o *Opt) Aliases() []string { return o.aliases }
func (o *Opt) Style() Style      { return o.style }
func (o *Opt) Index() Index      { return o.index }
func (o *Opt) Required() bool    { return o.required }
func (o *Opt) Multiple() bool    { return o.multiple }
func (o *Opt) Kind() Kind        { return o.kind }

// Default returns the declared default raw value, if any.
func (o *Opt) Default() (string, bool) { return o.def, o.hasDef }

// SetRequired marks the option as mandatory for the checker.
func (o *Opt) SetRequired(v bool) *Opt { o.required = v; return o }

// SetMultiple switches the option to append arity: every match appends to the
// stored values instead of overwriting.
func (o *Opt) SetMultiple(v bool) *Opt { o.multiple = v; return o }

// SetKind overrides the decode kind inferred from the spec string.
func (o *Opt) SetKind(k Kind) *Opt { o.kind = k; return o }

// SetIndex overrides the positional index.
func (o *Opt) SetIndex(ix Index) *Opt { o.index = ix; return o }

// SetDefault declares a default raw value applied when the option never
// matched.
func (o *Opt) SetDefault(raw string) *Opt { o.def, o.hasDef = raw, true; return o }

// Names returns the primary name followed by all aliases.
func (o *Opt) Names() []string {
	return append([]string{o.name}, o.aliases...)
}

func (o *Opt) String() string {
	return fmt.Sprintf("%s=%s(uid %d)", o.name, o.style, o.uid)
}

// parseSpec splits a registration spec string of the form
// "name=code[!][@index]" into its parts. The code selects style and value
// kind, "!" marks the option required and "@index" supplies an Index (see
// ParseIndex for the grammar).
func parseSpec(spec string) (*Opt, error) {
	name, rest, ok := strings.Cut(spec, "=")
	if !ok || name == "" {
		return nil, fmt.Errorf("invalid option spec %q: want name=code[!][@index]", spec)
	}
	o := &Opt{name: name, index: Index{}}

	var idxSpec string
	if at := strings.Index(rest, "@"); at != -1 {
		idxSpec = rest[at+1:]
		rest = rest[:at]
	}
	if strings.HasSuffix(rest, "!") {
		o.required = true
		rest = strings.TrimSuffix(rest, "!")
	}
	code, ok := styleCodes[rest]
	if !ok {
		return nil, fmt.Errorf("invalid option spec %q: unknown type code %q", spec, rest)
	}
	o.style = code.style
	o.kind = code.kind

	if idxSpec != "" {
		if !o.style.IsNOA() {
			return nil, fmt.Errorf("invalid option spec %q: index on non-positional option", spec)
		}
		ix, err := ParseIndex(idxSpec)
		if err != nil {
			return nil, fmt.Errorf("invalid option spec %q: %w", spec, err)
		}
		o.index = ix
	}
	switch o.style {
	case StyleCmd:
		// A command keyword is always the first positional token.
		o.index = Forward(0)
	case StylePos:
		if o.index.IsNull() {
			return nil, fmt.Errorf("invalid option spec %q: positional option needs @index", spec)
		}
	}
	return o, nil
}
