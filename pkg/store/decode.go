// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"

	"github.com/optwire/optwire/pkg/opt"
)

// DecodeError is returned when a raw token cannot be decoded into the
// declared value kind of an option. It names the option and the offending
// input rather than a generic parse failure.
type DecodeError struct {
	Uid  opt.Uid
	Name string
	Kind opt.Kind
	Raw  string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s value %q for option %s (uid %d)", e.Kind, e.Raw, e.Name, e.Uid)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decoder turns a raw token into a typed value.
type Decoder func(raw string) (any, error)

// kindDecoders is the closed registry of built-in decoders, keyed by the
// declared value kind of an option.
var kindDecoders = map[opt.Kind]Decoder{
	opt.KindRaw:    func(raw string) (any, error) { return raw, nil },
	opt.KindString: func(raw string) (any, error) { return raw, nil },
	opt.KindBool: func(raw string) (any, error) {
		return strconv.ParseBool(raw)
	},
	opt.KindInt: func(raw string) (any, error) {
		return strconv.ParseInt(raw, 10, 64)
	},
	opt.KindUint: func(raw string) (any, error) {
		return strconv.ParseUint(raw, 10, 64)
	},
	opt.KindFloat: func(raw string) (any, error) {
		return strconv.ParseFloat(raw, 64)
	},
	opt.KindDuration: func(raw string) (any, error) {
		return time.ParseDuration(raw)
	},
	opt.KindUUID: func(raw string) (any, error) {
		return uuid.Parse(raw)
	},
	opt.KindVersion: func(raw string) (any, error) {
		return semver.NewVersion(raw)
	},
}

func decodeKind(o *opt.Opt, raw string) (any, error) {
	dec, ok := kindDecoders[o.Kind()]
	if !ok {
		return nil, &DecodeError{
			Uid:  o.Uid(),
			Name: o.Name(),
			Kind: o.Kind(),
			Raw:  raw,
			Err:  fmt.Errorf("no decoder for kind %s", o.Kind()),
		}
	}
	v, err := dec(raw)
	if err != nil {
		return nil, &DecodeError{Uid: o.Uid(), Name: o.Name(), Kind: o.Kind(), Raw: raw, Err: err}
	}
	return v, nil
}
