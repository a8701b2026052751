// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package args

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func strptr(s string) *string { return &s }

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantTok  *Token
		wantStop bool
	}{
		{
			name:     "stop marker",
			raw:      "--",
			wantStop: true,
		},
		{
			name: "positional",
			raw:  "file.txt",
		},
		{
			name: "bare dash is positional",
			raw:  "-",
		},
		{
			name: "long flag",
			raw:  "--verbose",
			wantTok: &Token{
				Raw:    "--verbose",
				Prefix: "--",
				Name:   "verbose",
			},
		},
		{
			name: "short flag",
			raw:  "-v",
			wantTok: &Token{
				Raw:    "-v",
				Prefix: "-",
				Name:   "v",
			},
		},
		{
			name: "longest prefix wins",
			raw:  "--opt",
			wantTok: &Token{
				Raw:    "--opt",
				Prefix: "--",
				Name:   "opt",
			},
		},
		{
			name: "inline value",
			raw:  "--opt=value",
			wantTok: &Token{
				Raw:    "--opt=value",
				Prefix: "--",
				Name:   "opt",
				Value:  strptr("value"),
			},
		},
		{
			name: "inline empty value",
			raw:  "--opt=",
			wantTok: &Token{
				Raw:    "--opt=",
				Prefix: "--",
				Name:   "opt",
				Value:  strptr(""),
			},
		},
		{
			name: "value containing equals",
			raw:  "--opt=a=b",
			wantTok: &Token{
				Raw:    "--opt=a=b",
				Prefix: "--",
				Name:   "opt",
				Value:  strptr("a=b"),
			},
		},
		{
			name: "deactivation",
			raw:  "--/color",
			wantTok: &Token{
				Raw:        "--/color",
				Prefix:     "--",
				Name:       "color",
				Deactivate: true,
			},
		},
		{
			name: "bare deactivation marker stays a name",
			raw:  "-/",
			wantTok: &Token{
				Raw:    "-/",
				Prefix: "-",
				Name:   "/",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, stop := Classify(tt.raw, nil, "")
			if stop != tt.wantStop {
				t.Fatalf("Classify(%q) stop = %v, want %v", tt.raw, stop, tt.wantStop)
			}
			if diff := cmp.Diff(tt.wantTok, tok); diff != "" {
				t.Errorf("Classify(%q) token mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestClassifyCustomPrefixes(t *testing.T) {
	tok, stop := Classify("+incdir", []string{"+"}, "")
	if stop {
		t.Fatal("Classify(+incdir) stop = true, want false")
	}
	if tok == nil || tok.Prefix != "+" || tok.Name != "incdir" {
		t.Errorf("Classify(+incdir) = %+v, want prefix + name incdir", tok)
	}

	// "--" still stops even with custom prefixes.
	if _, stop := Classify("--", []string{"+"}, ""); !stop {
		t.Error("Classify(--) stop = false, want true")
	}

	// A "-" token carries no configured prefix here, so it is positional.
	if tok, _ := Classify("-v", []string{"+"}, ""); tok != nil {
		t.Errorf("Classify(-v) = %+v, want nil", tok)
	}
}
