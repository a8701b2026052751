// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"errors"
	"strings"
	"testing"
)

func TestHandlerKeepsDecodedValue(t *testing.T) {
	set := newSet(t, "--port=i")
	p := NewParser(set, Forward)
	var seen any
	p.On("--port", func(ctx *Context) (any, error) {
		seen = ctx.Value
		return nil, nil
	})

	mustParse(t, p, []string{"--port", "8080"})
	if seen != int64(8080) {
		t.Errorf("handler saw %v, want 8080", seen)
	}
	if v, _ := p.Value("--port"); v != int64(8080) {
		t.Errorf("--port = %v, want 8080", v)
	}
}

func TestHandlerReplacesValue(t *testing.T) {
	set := newSet(t, "--name=s")
	p := NewParser(set, Forward)
	p.On("--name", func(ctx *Context) (any, error) {
		return strings.ToUpper(ctx.Value.(string)), nil
	})

	mustParse(t, p, []string{"--name", "quiet"})
	if v, _ := p.Value("--name"); v != "QUIET" {
		t.Errorf("--name = %v, want QUIET", v)
	}
}

func TestHandlerSuppressesValue(t *testing.T) {
	set := newSet(t, "--secret=s")
	p := NewParser(set, Forward)
	called := false
	p.On("--secret", func(*Context) (any, error) {
		called = true
		return nil, ErrSuppress
	})

	out := mustParse(t, p, []string{"--secret", "hunter2"})
	if !called {
		t.Fatal("handler not invoked")
	}
	if _, ok := p.Value("--secret"); ok {
		t.Error("suppressed value was stored")
	}
	// The match still counts as a match.
	if len(out.Matched) != 1 {
		t.Errorf("Matched = %v, want one entry", out.Matched)
	}
}

func TestHandlerAbortsParse(t *testing.T) {
	set := newSet(t, "--bad=s")
	p := NewParser(set, Forward)
	sentinel := errors.New("refused")
	p.On("--bad", func(*Context) (any, error) {
		return nil, sentinel
	})

	out, err := p.Parse([]string{"--bad", "x"})
	var aborted *HandlerAbortedError
	if !errors.As(err, &aborted) {
		t.Fatalf("Parse error = %v, want *HandlerAbortedError", err)
	}
	if !errors.Is(err, sentinel) {
		t.Error("HandlerAbortedError does not wrap the handler's error")
	}
	if aborted.Name != "--bad" {
		t.Errorf("Name = %q, want --bad", aborted.Name)
	}
	if out.State != Failed {
		t.Errorf("State = %v, want failed", out.State)
	}
}

func TestHandlerContextFields(t *testing.T) {
	set := newSet(t, "--flag=b", "src=p@0")
	p := NewParser(set, Forward)
	var got *Context
	p.On("--flag", func(ctx *Context) (any, error) {
		got = ctx
		return nil, nil
	})

	mustParse(t, p, []string{"a", "--flag", "b"})
	if got == nil {
		t.Fatal("handler not invoked")
	}
	if got.Opt.Name() != "--flag" {
		t.Errorf("Opt = %v, want --flag", got.Opt.Name())
	}
	if got.Raw != "true" || got.Value != true {
		t.Errorf("Raw, Value = %q, %v, want true, true", got.Raw, got.Value)
	}
	// One positional token had been seen when the flag matched.
	if got.NoaCount != 1 {
		t.Errorf("NoaCount = %d, want 1", got.NoaCount)
	}
	if got.TotalTokens != 3 {
		t.Errorf("TotalTokens = %d, want 3", got.TotalTokens)
	}
	if got.Set != set || got.Store != p.Store() {
		t.Error("Context does not carry the live set and store")
	}
}

func TestMainHandlerRunsLast(t *testing.T) {
	set := newSet(t, "-a=b", "src=p@0", "main=m")
	p := NewParser(set, Forward)
	var order []string
	p.On("-a", func(*Context) (any, error) {
		order = append(order, "a")
		return nil, nil
	})
	var mainNoa int
	p.On("main", func(ctx *Context) (any, error) {
		order = append(order, "main")
		mainNoa = ctx.NoaCount
		return nil, ErrSuppress
	})

	mustParse(t, p, []string{"-a", "input"})
	if len(order) != 2 || order[len(order)-1] != "main" {
		t.Errorf("order = %v, want main last", order)
	}
	if mainNoa != 1 {
		t.Errorf("main NoaCount = %d, want 1", mainNoa)
	}
}

func TestMainWithoutHandlerIsNoop(t *testing.T) {
	set := newSet(t, "main=m", "-a=b")
	p := NewParser(set, Forward)
	out := mustParse(t, p, []string{"-a"})
	for _, uid := range out.Matched {
		if set.Get(uid).Name() == "main" {
			t.Error("main matched without a handler")
		}
	}
}
