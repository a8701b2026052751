// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"fmt"
	"strconv"
	"strings"
)

// IndexKind is the shape of a positional index specification.
type IndexKind int

const (
	// IndexNull means the option has no positional index.
	IndexNull IndexKind = iota

	// IndexForward matches the fixed position Start, counted from the front.
	IndexForward

	// IndexBackward matches the position Start counted from the end, so
	// Start 0 is the last positional token.
	IndexBackward

	// IndexRangeFrom matches any position >= Start.
	IndexRangeFrom

	// IndexRangeTo matches any position < End.
	IndexRangeTo

	// IndexRange matches any position in [Start, End).
	IndexRange

	// IndexAnywhere matches every position.
	IndexAnywhere
)

// Index describes which positional slot(s) an option may bind to. Positions
// count only unconsumed, non-option tokens, zero based, so positional
// numbering is independent of how many named options preceded them.
type Index struct {
	Kind  IndexKind
	Start int
	End   int
}

// Forward returns a fixed-position index.
func Forward(n int) Index { return Index{Kind: IndexForward, Start: n} }

// Backward returns an index counted from the end of the positional tokens.
func Backward(n int) Index { return Index{Kind: IndexBackward, Start: n} }

// RangeFrom returns an open range [n, ...).
func RangeFrom(n int) Index { return Index{Kind: IndexRangeFrom, Start: n} }

// RangeTo returns an open range [0, n).
func RangeTo(n int) Index { return Index{Kind: IndexRangeTo, End: n} }

// Range returns the half-open range [n, m).
func Range(n, m int) Index { return Index{Kind: IndexRange, Start: n, End: m} }

// Anywhere returns an index matching every positional slot.
func Anywhere() Index { return Index{Kind: IndexAnywhere} }

// ParseIndex parses the index grammar used by Set.AddOpt after "@":
//
//	n     fixed position n
//	-n    position n counted from the end
//	n..   open range from n
//	..n   open range to n
//	n..m  half-open range [n, m)
//	>n    open range from n+1
//	*     anywhere
func ParseIndex(s string) (Index, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Index{}, fmt.Errorf("empty index spec")
	case s == "*":
		return Anywhere(), nil
	case strings.HasPrefix(s, ">"):
		n, err := strconv.Atoi(s[1:])
		if err != nil {
			return Index{}, fmt.Errorf("invalid index spec %q: %w", s, err)
		}
		return RangeFrom(n + 1), nil
	case strings.HasPrefix(s, "-"):
		n, err := strconv.Atoi(s[1:])
		if err != nil {
			return Index{}, fmt.Errorf("invalid index spec %q: %w", s, err)
		}
		return Backward(n), nil
	case strings.Contains(s, ".."):
		lo, hi, _ := strings.Cut(s, "..")
		switch {
		case lo == "" && hi == "":
			return Index{}, fmt.Errorf("invalid index spec %q: unbounded range", s)
		case lo == "":
			n, err := strconv.Atoi(hi)
			if err != nil {
				return Index{}, fmt.Errorf("invalid index spec %q: %w", s, err)
			}
			return RangeTo(n), nil
		case hi == "":
			n, err := strconv.Atoi(lo)
			if err != nil {
				return Index{}, fmt.Errorf("invalid index spec %q: %w", s, err)
			}
			return RangeFrom(n), nil
		default:
			n, err := strconv.Atoi(lo)
			if err != nil {
				return Index{}, fmt.Errorf("invalid index spec %q: %w", s, err)
			}
			m, err := strconv.Atoi(hi)
			if err != nil {
				return Index{}, fmt.Errorf("invalid index spec %q: %w", s, err)
			}
			if m <= n {
				return Index{}, fmt.Errorf("invalid index spec %q: empty range", s)
			}
			return Range(n, m), nil
		}
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return Index{}, fmt.Errorf("invalid index spec %q: %w", s, err)
		}
		return Forward(n), nil
	}
}

// Match reports whether the positional slot at pos binds to this index, given
// the total count of positional tokens.
func (ix Index) Match(pos, count int) bool {
	switch ix.Kind {
	case IndexForward:
		return ix.Start < count && pos == ix.Start
	case IndexBackward:
		return ix.Start < count && pos == count-ix.Start-1
	case IndexRangeFrom:
		return pos >= ix.Start
	case IndexRangeTo:
		return pos < ix.End
	case IndexRange:
		return pos >= ix.Start && pos < ix.End
	case IndexAnywhere:
		return true
	default:
		return false
	}
}

// Reachable reports whether at least one positional slot can satisfy this
// index given the final count of positional tokens. The checker uses it to
// flag required positional options whose index lies beyond the supplied
// tokens.
func (ix Index) Reachable(count int) bool {
	switch ix.Kind {
	case IndexForward, IndexBackward:
		return ix.Start < count
	case IndexRangeFrom:
		return ix.Start < count
	case IndexRangeTo:
		return count > 0 && ix.End > 0
	case IndexRange:
		return ix.Start < count
	case IndexAnywhere:
		return count > 0
	default:
		return false
	}
}

func (ix Index) String() string {
	switch ix.Kind {
	case IndexForward:
		return strconv.Itoa(ix.Start)
	case IndexBackward:
		return "-" + strconv.Itoa(ix.Start)
	case IndexRangeFrom:
		return strconv.Itoa(ix.Start) + ".."
	case IndexRangeTo:
		return ".." + strconv.Itoa(ix.End)
	case IndexRange:
		return fmt.Sprintf("%d..%d", ix.Start, ix.End)
	case IndexAnywhere:
		return "*"
	default:
		return ""
	}
}

// IsNull reports whether no index was declared.
func (ix Index) IsNull() bool { return ix.Kind == IndexNull }
