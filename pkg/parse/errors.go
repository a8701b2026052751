// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"errors"
	"fmt"

	"github.com/optwire/optwire/pkg/opt"
)

// ErrNoMatch is reported by the dispatcher when every registered parser
// failed. Individual parser failures are not surfaced unless diagnostics are
// requested.
var ErrNoMatch = errors.New("no sub-command matched")

// UnrecognizedTokenError is returned when a prefixed token resolves to no
// declared option under a strict policy. The Pre policy treats the same
// condition as a stop signal instead.
type UnrecognizedTokenError struct {
	Token string
}

func (e *UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("unrecognized option %q", e.Token)
}

// MissingValueError is returned when an argument-style option sits at the end
// of the token sequence with no value token to consume.
type MissingValueError struct {
	Uid  opt.Uid
	Name string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("option %s requires a value", e.Name)
}

// MissingRequiredError is returned by the checker when a required named
// option recorded no value.
type MissingRequiredError struct {
	Uid  opt.Uid
	Name string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("missing required option %s", e.Name)
}

// PositionalError is returned by the checker when a required positional or
// command option could not be satisfied by the supplied positional tokens.
type PositionalError struct {
	Uid   opt.Uid
	Name  string
	Index opt.Index
}

func (e *PositionalError) Error() string {
	if e.Index.IsNull() {
		return fmt.Sprintf("positional option %s not satisfied", e.Name)
	}
	return fmt.Sprintf("positional option %s@%s not satisfied", e.Name, e.Index)
}
