// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"github.com/optwire/optwire/pkg/opt"
	"github.com/optwire/optwire/pkg/store"
)

// Check validates required-option and positional completeness after a policy
// pass. It never mutates state. noaCount is the final count of positional
// tokens seen by the pass.
func Check(set *opt.Set, st *store.Store, noaCount int) error {
	if err := CheckPositional(set, st, noaCount); err != nil {
		return err
	}
	for _, o := range set.Opts() {
		switch o.Style() {
		case opt.StyleCmd, opt.StylePos, opt.StyleMain:
			// Validated by CheckPositional; Main always runs.
		default:
			if o.Required() && !st.Has(o.Uid()) {
				return &MissingRequiredError{Uid: o.Uid(), Name: o.Name()}
			}
		}
	}
	return nil
}

// CheckPositional validates command keywords and positional completeness
// against the consumed positional tokens. The partial policy runs this part
// even when it stopped early: positional tokens before the stop point are
// final, only named-option requiredness is undecidable there.
func CheckPositional(set *opt.Set, st *store.Store, noaCount int) error {
	var cmds []*opt.Opt
	cmdMatched := false
	for _, o := range set.Opts() {
		switch o.Style() {
		case opt.StyleCmd:
			cmds = append(cmds, o)
			if st.Has(o.Uid()) {
				cmdMatched = true
			}
		case opt.StylePos:
			// An index beyond the supplied positional tokens fails only when
			// the option is required; an unsatisfied optional positional is
			// fine.
			if o.Required() && !st.Has(o.Uid()) {
				return &PositionalError{Uid: o.Uid(), Name: o.Name(), Index: o.Index()}
			}
		}
	}
	// Declared command keywords are alternatives: one of them must have
	// matched the first positional token.
	if len(cmds) > 0 && !cmdMatched {
		return &PositionalError{Uid: cmds[0].Uid(), Name: cmds[0].Name(), Index: opt.Forward(0)}
	}
	return nil
}
