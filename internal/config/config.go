// Package config loads the optional operator-precedence overrides a
// session starts with (§4.4/§9's "ParseOptions passed behind a
// pointer, mutable across invocations"). Grounded on opal-lang-opal's
// validation_config.go pattern of unmarshalling into a small struct
// and folding it onto a set of defaults, using gopkg.in/yaml.v3.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lambda-lang/lambda/ast"
	"github.com/lambda-lang/lambda/parser"
)

// OperatorOverride is one entry of a .lambdarc.yaml precedence table:
//
//	operators:
//	  "%":  { strength: 8, assoc: left }
//	  "**": { strength: 9, assoc: right }
type OperatorOverride struct {
	Strength int    `yaml:"strength"`
	Assoc    string `yaml:"assoc"`
}

// File is the top-level shape of a .lambdarc.yaml document.
type File struct {
	Operators map[string]OperatorOverride `yaml:"operators"`
}

// Load reads path, if it exists, and applies its operator table on top
// of parser.DefaultOptions(). A missing file is not an error — the
// defaults are already a complete, internally consistent table (§4.4)
// — but a malformed one is, so a typo in a checked-in .lambdarc.yaml
// fails loudly instead of silently falling back to defaults.
func Load(path string) (*parser.ParseOptions, error) {
	opts := parser.DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := apply(opts, f); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return opts, nil
}

func apply(opts *parser.ParseOptions, f File) error {
	for op, override := range f.Operators {
		assoc, err := parseAssoc(override.Assoc)
		if err != nil {
			return fmt.Errorf("operator %q: %w", op, err)
		}
		opts.Priorities[op] = ast.Priority{Strength: override.Strength, Assoc: assoc}
	}
	return nil
}

func parseAssoc(s string) (ast.Assoc, error) {
	switch s {
	case "left", "":
		return ast.Left, nil
	case "right":
		return ast.Right, nil
	default:
		return 0, fmt.Errorf("unknown associativity %q, want \"left\" or \"right\"", s)
	}
}
