// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"testing"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name         string
		spec         string
		wantName     string
		wantStyle    Style
		wantKind     Kind
		wantRequired bool
		wantIndex    Index
		wantErr      bool
	}{
		{
			name:      "boolean flag",
			spec:      "--verbose=b",
			wantName:  "--verbose",
			wantStyle: StyleBoolean,
			wantKind:  KindBool,
		},
		{
			name:         "required int argument",
			spec:         "--port=i!",
			wantName:     "--port",
			wantStyle:    StyleArgument,
			wantKind:     KindInt,
			wantRequired: true,
		},
		{
			name:      "string argument",
			spec:      "-o=s",
			wantName:  "-o",
			wantStyle: StyleArgument,
			wantKind:  KindString,
		},
		{
			name:      "duration argument",
			spec:      "--timeout=d",
			wantName:  "--timeout",
			wantStyle: StyleArgument,
			wantKind:  KindDuration,
		},
		{
			name:      "uuid argument",
			spec:      "--id=uuid",
			wantName:  "--id",
			wantStyle: StyleArgument,
			wantKind:  KindUUID,
		},
		{
			name:      "version argument",
			spec:      "--min-version=ver",
			wantName:  "--min-version",
			wantStyle: StyleArgument,
			wantKind:  KindVersion,
		},
		{
			name:      "positional with fixed index",
			spec:      "src=p@0",
			wantName:  "src",
			wantStyle: StylePos,
			wantKind:  KindString,
			wantIndex: Forward(0),
		},
		{
			name:         "required positional with range",
			spec:         "files=p!@1..",
			wantName:     "files",
			wantStyle:    StylePos,
			wantKind:     KindString,
			wantRequired: true,
			wantIndex:    RangeFrom(1),
		},
		{
			name:      "command keyword gets index zero",
			spec:      "run=c",
			wantName:  "run",
			wantStyle: StyleCmd,
			wantKind:  KindBool,
			wantIndex: Forward(0),
		},
		{
			name:      "main",
			spec:      "main=m",
			wantName:  "main",
			wantStyle: StyleMain,
			wantKind:  KindRaw,
		},
		{
			name:    "missing equals",
			spec:    "--flag",
			wantErr: true,
		},
		{
			name:    "unknown type code",
			spec:    "--flag=x",
			wantErr: true,
		},
		{
			name:    "positional without index",
			spec:    "src=p",
			wantErr: true,
		},
		{
			name:    "index on non-positional",
			spec:    "--flag=b@1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := parseSpec(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseSpec(%q) error = nil, want error", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSpec(%q) error = %v", tt.spec, err)
			}
			if o.Name() != tt.wantName {
				t.Errorf("Name = %q, want %q", o.Name(), tt.wantName)
			}
			if o.Style() != tt.wantStyle {
				t.Errorf("Style = %v, want %v", o.Style(), tt.wantStyle)
			}
			if o.Kind() != tt.wantKind {
				t.Errorf("Kind = %v, want %v", o.Kind(), tt.wantKind)
			}
			if o.Required() != tt.wantRequired {
				t.Errorf("Required = %v, want %v", o.Required(), tt.wantRequired)
			}
			if o.Index() != tt.wantIndex {
				t.Errorf("Index = %v, want %v", o.Index(), tt.wantIndex)
			}
		})
	}
}

func TestOptSetters(t *testing.T) {
	o, err := parseSpec("--copt=s")
	if err != nil {
		t.Fatal(err)
	}
	o.SetMultiple(true).SetDefault("fallback")
	if !o.Multiple() {
		t.Error("Multiple = false, want true")
	}
	def, ok := o.Default()
	if !ok || def != "fallback" {
		t.Errorf("Default = %q, %v, want %q, true", def, ok, "fallback")
	}
}
