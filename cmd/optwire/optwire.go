// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command optwire is a development tool for option definition files: it
// loads a TOML or YAML definitions file, parses a token sequence against it
// with the chosen policy, and prints what matched.
//
// Usage:
//
//	optwire check defs.toml [--policy=fwd] [--raw] -- <tokens...>
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/optwire/optwire/pkg/opt"
	"github.com/optwire/optwire/pkg/optcfg"
	"github.com/optwire/optwire/pkg/parse"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("optwire: ")

	head, tokens := splitAtDoubleDash(os.Args[1:])
	if err := run(head, tokens); err != nil {
		log.Fatal(err)
	}
}

// run parses the tool's own arguments with the engine it ships.
func run(head, tokens []string) error {
	set := opt.NewSet()
	if _, err := set.AddOpt("check=c"); err != nil {
		return err
	}
	if _, err := set.AddOpt("defs=p!@1"); err != nil {
		return err
	}
	if _, err := set.AddOpt("--policy=s"); err != nil {
		return err
	}
	if _, err := set.AddOpt("--raw=b"); err != nil {
		return err
	}

	p := parse.NewParser(set, parse.Forward)
	if _, err := p.Parse(head); err != nil {
		return fmt.Errorf("usage: optwire check <defs.(toml|yaml)> [--policy=fwd|delay|pre|seq] [--raw] -- <tokens...>: %w", err)
	}

	defsPath, _ := p.Value("defs")
	policyName := "fwd"
	if v, ok := p.Value("--policy"); ok {
		policyName = v.(string)
	}
	showRaw := false
	if v, ok := p.Value("--raw"); ok {
		showRaw = v.(bool)
	}

	policy, err := parse.PolicyByName(policyName)
	if err != nil {
		return err
	}
	defs, err := optcfg.Load(defsPath.(string))
	if err != nil {
		return err
	}

	target := parse.NewParser(defs, policy)
	out, perr := target.Parse(tokens)
	report(target, out, showRaw)
	if perr != nil {
		return fmt.Errorf("parse failed: %w", perr)
	}
	return nil
}

func report(p *parse.Parser, out *parse.Outcome, showRaw bool) {
	if out == nil {
		return
	}
	colorize := term.IsTerminal(int(os.Stdout.Fd()))
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)
	if !colorize {
		color.NoColor = true
	}

	seen := make(map[opt.Uid]bool)
	for _, uid := range out.Matched {
		if seen[uid] {
			continue
		}
		seen[uid] = true
		o := p.Set().Get(uid)
		green.Printf("%s", o.Name())
		fmt.Printf(" (%s, uid %d) = %v", o.Style(), uid, p.Store().Vals(uid))
		if showRaw {
			fmt.Printf(" raw=%q", p.Store().Raws(uid))
		}
		fmt.Println()
	}
	if len(out.Remaining) > 0 {
		yellow.Printf("remaining: %q\n", out.Remaining)
	}
	fmt.Printf("state: %s\n", out.State)
}

func splitAtDoubleDash(argv []string) ([]string, []string) {
	for i, arg := range argv {
		if arg == "--" {
			return argv[:i], argv[i+1:]
		}
	}
	return argv, nil
}
