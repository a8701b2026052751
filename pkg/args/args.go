// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package args owns the raw token sequence of one parse: a read cursor over
// argv-like tokens, the literal "--" passthrough marker, and the lexical
// classification of single tokens into option candidates.
package args

// Args is the argument cursor: an ordered sequence of raw tokens, a read
// position, and an optional split point after which every token is treated as
// a positional value verbatim. An Args is single use per parse call; the
// dispatcher hands each attempt its own clone.
type Args struct {
	tokens []string
	cur    int
	stop   int
}

// New copies tokens into a fresh cursor.
func New(tokens []string) *Args {
	return &Args{
		tokens: append([]string(nil), tokens...),
		stop:   -1,
	}
}

// Len returns the total token count.
func (a *Args) Len() int { return len(a.tokens) }

// Get returns the token at index i.
func (a *Args) Get(i int) string { return a.tokens[i] }

// Cur returns the cursor position.
func (a *Args) Cur() int { return a.cur }

// Next returns the token under the cursor and advances past it.
func (a *Args) Next() (string, bool) {
	if a.cur >= len(a.tokens) {
		return "", false
	}
	tok := a.tokens[a.cur]
	a.cur++
	return tok, true
}

// Peek returns the token after the cursor without advancing, for options that
// consume their value from the following token.
func (a *Args) Peek() (string, bool) {
	if a.cur >= len(a.tokens) {
		return "", false
	}
	return a.tokens[a.cur], true
}

// Skip advances the cursor by n tokens.
func (a *Args) Skip(n int) { a.cur += n }

// MarkStop records the index of the literal stop marker. Tokens after it are
// positional regardless of prefix.
func (a *Args) MarkStop(i int) { a.stop = i }

// PastStop reports whether index i lies after a recorded stop marker.
func (a *Args) PastStop(i int) bool { return a.stop >= 0 && i > a.stop }

// StopAt returns the stop marker index, or -1 if none was seen.
func (a *Args) StopAt() int { return a.stop }

// Remaining returns the unconsumed tokens from the cursor on. The slice
// aliases the cursor's backing array.
func (a *Args) Remaining() []string { return a.tokens[a.cur:] }

// Clone returns an independent copy of the cursor, including its read
// position and any recorded stop marker.
func (a *Args) Clone() *Args {
	return &Args{
		tokens: append([]string(nil), a.tokens...),
		cur:    a.cur,
		stop:   a.stop,
	}
}
