package deinflect

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// descriptorFile is the on-disk YAML shape of a Descriptor. Only literal
// affix rules can be expressed in YAML; pattern rules carry Go code and
// must be registered through a Descriptor built in source.
type descriptorFile struct {
	Language   string          `yaml:"language"`
	Conditions []Condition     `yaml:"conditions"`
	Transforms []transformSpec `yaml:"transforms"`
}

type transformSpec struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Rules       []ruleSpec `yaml:"rules"`
}

// ruleSpec keeps the descriptor naming convention: the literals are named
// for the inflecting direction, so literalOut is the affix found on the
// surface form and literalIn the affix of the dictionary-side rewrite.
type ruleSpec struct {
	Kind          string   `yaml:"kind"`
	ConditionsIn  []string `yaml:"conditionsIn,omitempty"`
	ConditionsOut []string `yaml:"conditionsOut,omitempty"`
	LiteralIn     string   `yaml:"literalIn"`
	LiteralOut    string   `yaml:"literalOut"`
}

// LoadDescriptor parses a YAML descriptor from r. The result still has to
// be compiled by Builder.Load; this step only checks YAML shape and rule
// kinds, not condition references.
func LoadDescriptor(r io.Reader) (*Descriptor, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var df descriptorFile
	if err := dec.Decode(&df); err != nil {
		return nil, fmt.Errorf("decode descriptor: %w", err)
	}
	if df.Language == "" {
		return nil, fmt.Errorf("descriptor has no language tag")
	}

	d := &Descriptor{
		Language:   df.Language,
		Conditions: df.Conditions,
	}
	for _, ts := range df.Transforms {
		t := Transform{Name: ts.Name, Description: ts.Description}
		for i, rs := range ts.Rules {
			switch rs.Kind {
			case "suffix":
				t.Rules = append(t.Rules, SuffixRule(rs.LiteralOut, rs.LiteralIn, rs.ConditionsIn, rs.ConditionsOut))
			case "prefix":
				t.Rules = append(t.Rules, PrefixRule(rs.LiteralOut, rs.LiteralIn, rs.ConditionsIn, rs.ConditionsOut))
			case "other":
				return nil, fmt.Errorf("transform %q rule %d: pattern rules cannot be loaded from YAML", ts.Name, i)
			default:
				return nil, fmt.Errorf("transform %q rule %d: unknown rule kind %q", ts.Name, i, rs.Kind)
			}
		}
		d.Transforms = append(d.Transforms, t)
	}
	return d, nil
}

// LoadDescriptorFile reads and parses a YAML descriptor file.
func LoadDescriptorFile(path string) (*Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open descriptor: %w", err)
	}
	defer f.Close()

	d, err := LoadDescriptor(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
