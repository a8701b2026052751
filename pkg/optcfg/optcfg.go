// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optcfg loads option definitions from TOML or YAML files and
// registers them into an option set. It is a thin translation layer: every
// definition turns into plain registration-API calls, nothing here touches
// the matching pipeline.
package optcfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/optwire/optwire/pkg/opt"
)

// Def is one declared option in a definitions file. Spec uses the
// registration grammar "name=code[!][@index]"; the other fields cover what
// the grammar cannot express.
type Def struct {
	Spec     string   `toml:"spec" yaml:"spec"`
	Aliases  []string `toml:"aliases" yaml:"aliases"`
	Multiple bool     `toml:"multiple" yaml:"multiple"`
	Default  *string  `toml:"default" yaml:"default"`
}

// File is the root of a definitions file.
type File struct {
	Options []Def `toml:"option" yaml:"options"`
}

// Load reads a definitions file, picking the format from the extension
// (.toml, .yaml or .yml), and returns a populated option set.
func Load(path string) (*opt.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read option definitions: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOML(data)
	case ".yaml", ".yml":
		return LoadYAML(data)
	default:
		return nil, fmt.Errorf("unsupported definitions format %q", filepath.Ext(path))
	}
}

// LoadTOML parses TOML option definitions and registers them into a new set.
func LoadTOML(data []byte) (*opt.Set, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse toml definitions: %w", err)
	}
	return Register(opt.NewSet(), f.Options)
}

// LoadYAML parses YAML option definitions and registers them into a new set.
func LoadYAML(data []byte) (*opt.Set, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse yaml definitions: %w", err)
	}
	return Register(opt.NewSet(), f.Options)
}

// Register turns definitions into registration calls against set. It returns
// set for chaining.
func Register(set *opt.Set, defs []Def) (*opt.Set, error) {
	for _, def := range defs {
		o, err := set.AddOpt(def.Spec)
		if err != nil {
			return nil, err
		}
		if def.Multiple {
			o.SetMultiple(true)
		}
		if def.Default != nil {
			o.SetDefault(*def.Default)
		}
		for _, alias := range def.Aliases {
			if err := set.AddAlias(o.Uid(), alias); err != nil {
				return nil, err
			}
		}
	}
	return set, nil
}
