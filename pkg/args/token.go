// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package args

import (
	"sort"
	"strings"
)

// StopMarker is the literal token after which all remaining tokens are
// positional values verbatim.
const StopMarker = "--"

// DefaultPrefixes are the option prefixes tried when a parser configures
// none. Longer prefixes are matched first.
var DefaultPrefixes = []string{"--", "-"}

// DefaultDeactivate is the marker that turns a boolean flag off, as in
// "--/color".
const DefaultDeactivate = "/"

// Token is the ephemeral result of classifying one raw token that starts
// with a configured prefix. It is purely lexical; resolving Name against
// declared options (exact, embedded, combined or abbreviated) is the match
// layer's job.
type Token struct {
	// Raw is the token as it appeared on the command line.
	Raw string

	// Prefix is the longest configured prefix the token starts with.
	Prefix string

	// Name is the candidate option name, prefix stripped, inline value
	// removed.
	Name string

	// Value is the inline value after the first "=", or nil when the token
	// carries none.
	Value *string

	// Deactivate marks the negation form "--/name", an explicit false for a
	// boolean option.
	Deactivate bool
}

// Classify inspects one raw token against the configured prefixes and
// deactivation marker. It returns (nil, false) for tokens carrying no prefix,
// which are positional or command candidates, and (nil, true) for the literal
// stop marker.
func Classify(raw string, prefixes []string, deactivate string) (tok *Token, stop bool) {
	if raw == StopMarker {
		return nil, true
	}
	if len(prefixes) == 0 {
		prefixes = DefaultPrefixes
	}
	prefix := longestPrefix(raw, prefixes)
	if prefix == "" || len(raw) == len(prefix) {
		// A bare prefix such as "-" is a positional value (commonly stdin).
		return nil, false
	}
	t := &Token{Raw: raw, Prefix: prefix, Name: raw[len(prefix):]}
	if deactivate == "" {
		deactivate = DefaultDeactivate
	}
	if strings.HasPrefix(t.Name, deactivate) && len(t.Name) > len(deactivate) {
		t.Deactivate = true
		t.Name = t.Name[len(deactivate):]
	}
	if name, val, ok := strings.Cut(t.Name, "="); ok && name != "" {
		t.Name = name
		t.Value = &val
	}
	return t, false
}

func longestPrefix(raw string, prefixes []string) string {
	sorted := append([]string(nil), prefixes...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	for _, p := range sorted {
		if strings.HasPrefix(raw, p) {
			return p
		}
	}
	return ""
}
