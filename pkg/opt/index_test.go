// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import "testing"

func TestParseIndex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Index
		wantErr bool
	}{
		{name: "fixed", in: "2", want: Forward(2)},
		{name: "backward", in: "-1", want: Backward(1)},
		{name: "range from", in: "1..", want: RangeFrom(1)},
		{name: "range to", in: "..3", want: RangeTo(3)},
		{name: "closed range", in: "1..3", want: Range(1, 3)},
		{name: "greater than", in: ">0", want: RangeFrom(1)},
		{name: "anywhere", in: "*", want: Anywhere()},
		{name: "empty", in: "", wantErr: true},
		{name: "unbounded range", in: "..", wantErr: true},
		{name: "empty range", in: "3..1", wantErr: true},
		{name: "garbage", in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIndex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseIndex(%q) error = nil, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIndex(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseIndex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIndexMatch(t *testing.T) {
	tests := []struct {
		name  string
		ix    Index
		pos   int
		count int
		want  bool
	}{
		{name: "forward hit", ix: Forward(1), pos: 1, count: 3, want: true},
		{name: "forward miss", ix: Forward(1), pos: 2, count: 3, want: false},
		{name: "forward beyond count", ix: Forward(5), pos: 5, count: 3, want: false},
		{name: "backward last", ix: Backward(0), pos: 2, count: 3, want: true},
		{name: "backward second to last", ix: Backward(1), pos: 1, count: 3, want: true},
		{name: "backward miss", ix: Backward(0), pos: 0, count: 3, want: false},
		{name: "range from hit", ix: RangeFrom(1), pos: 4, count: 5, want: true},
		{name: "range from miss", ix: RangeFrom(1), pos: 0, count: 5, want: false},
		{name: "range to hit", ix: RangeTo(2), pos: 1, count: 5, want: true},
		{name: "range to boundary", ix: RangeTo(2), pos: 2, count: 5, want: false},
		{name: "closed range hit", ix: Range(1, 3), pos: 2, count: 5, want: true},
		{name: "closed range upper exclusive", ix: Range(1, 3), pos: 3, count: 5, want: false},
		{name: "anywhere", ix: Anywhere(), pos: 4, count: 5, want: true},
		{name: "null never matches", ix: Index{}, pos: 0, count: 5, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ix.Match(tt.pos, tt.count); got != tt.want {
				t.Errorf("%v.Match(%d, %d) = %v, want %v", tt.ix, tt.pos, tt.count, got, tt.want)
			}
		})
	}
}

func TestIndexReachable(t *testing.T) {
	tests := []struct {
		name  string
		ix    Index
		count int
		want  bool
	}{
		{name: "forward within", ix: Forward(1), count: 2, want: true},
		{name: "forward beyond", ix: Forward(2), count: 2, want: false},
		{name: "backward within", ix: Backward(1), count: 2, want: true},
		{name: "backward beyond", ix: Backward(2), count: 2, want: false},
		{name: "range from empty", ix: RangeFrom(3), count: 2, want: false},
		{name: "anywhere empty", ix: Anywhere(), count: 0, want: false},
		{name: "anywhere nonempty", ix: Anywhere(), count: 1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ix.Reachable(tt.count); got != tt.want {
				t.Errorf("%v.Reachable(%d) = %v, want %v", tt.ix, tt.count, got, tt.want)
			}
		})
	}
}

func TestIndexString(t *testing.T) {
	tests := []struct {
		ix   Index
		want string
	}{
		{Forward(2), "2"},
		{Backward(1), "-1"},
		{RangeFrom(1), "1.."},
		{RangeTo(3), "..3"},
		{Range(1, 3), "1..3"},
		{Anywhere(), "*"},
		{Index{}, ""},
	}
	for _, tt := range tests {
		if got := tt.ix.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
