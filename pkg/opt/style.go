// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import "fmt"

// Style classifies how an option is matched and consumed on the command line.
type Style int

const (
	// StyleNull is the zero value; options never carry it after registration.
	StyleNull Style = iota

	// StyleBoolean is a flag taking no argument, e.g. "--verbose" or "-v".
	StyleBoolean

	// StyleArgument takes exactly one value, e.g. "--out file" or "--out=file".
	StyleArgument

	// StyleCombined is several single-letter boolean flags packed into one
	// token, e.g. "-abc" setting "-a", "-b" and "-c". It is produced by the
	// classifier; declared options use StyleBoolean.
	StyleCombined

	// StyleEmbedded is a name and value fused in one token, e.g. "--opt=v"
	// or "-i42". Produced by the classifier; declared options use
	// StyleArgument.
	StyleEmbedded

	// StylePos binds to unconsumed non-option tokens by positional index.
	StylePos

	// StyleCmd is a bare keyword consuming no prefix, matched at positional
	// index zero.
	StyleCmd

	// StyleMain is invoked once after all other matching, receiving the
	// final collected state. At most one per Set.
	StyleMain
)

func (s Style) String() string {
	switch s {
	case StyleNull:
		return "null"
	case StyleBoolean:
		return "boolean"
	case StyleArgument:
		return "argument"
	case StyleCombined:
		return "combined"
	case StyleEmbedded:
		return "embedded"
	case StylePos:
		return "pos"
	case StyleCmd:
		return "cmd"
	case StyleMain:
		return "main"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// IsNOA reports whether the style matches non-option arguments.
func (s Style) IsNOA() bool {
	return s == StylePos || s == StyleCmd || s == StyleMain
}
