package param

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Kind names a parameter kind in bank files.
type Kind string

const (
	KindFloat Kind = "float"
	KindInt   Kind = "int"
	KindBool  Kind = "bool"
	KindEnum  Kind = "enum"
)

// Spec declares one parameter in a bank file. Default is a plain value for
// float and int, 0/1 for bool and a variant index for enum.
type Spec struct {
	ID        string   `toml:"id" yaml:"id"`
	Name      string   `toml:"name" yaml:"name"`
	Kind      Kind     `toml:"kind" yaml:"kind"`
	Unit      string   `toml:"unit" yaml:"unit"`
	Min       float32  `toml:"min" yaml:"min"`
	Max       float32  `toml:"max" yaml:"max"`
	Default   float32  `toml:"default" yaml:"default"`
	Skew      float32  `toml:"skew" yaml:"skew"`
	Step      float32  `toml:"step" yaml:"step"`
	Precision *int     `toml:"precision" yaml:"precision"`
	Variants  []string `toml:"variants" yaml:"variants"`
}

type bankFile struct {
	Params []Spec `toml:"param" yaml:"params"`
}

// Bank is an ordered set of parameters.
type Bank struct {
	params []Param
	byID   map[string]Param
}

// NewBank creates a bank; ids must be unique.
func NewBank(params ...Param) (*Bank, error) {
	b := &Bank{byID: make(map[string]Param, len(params))}

	for _, p := range params {
		if _, dup := b.byID[p.ID()]; dup {
			return nil, fmt.Errorf("duplicate parameter id %q", p.ID())
		}

		b.byID[p.ID()] = p
		b.params = append(b.params, p)
	}

	return b, nil
}

// All returns the parameters in declaration order.
func (b *Bank) All() []Param {
	out := make([]Param, len(b.params))
	copy(out, b.params)

	return out
}

// Get looks up a parameter by id.
func (b *Bank) Get(id string) (Param, error) {
	p, ok := b.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParam, id)
	}

	return p, nil
}

// Len returns the number of parameters.
func (b *Bank) Len() int { return len(b.params) }

// LoadBank reads a TOML or YAML bank file, chosen by extension.
func LoadBank(path string, host Host) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bank file: %w", err)
	}

	var bf bankFile

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&bf)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&bf)
	default:
		return nil, fmt.Errorf("unsupported bank format %q", filepath.Ext(path))
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode bank file: %w", err)
	}

	return BuildBank(bf.Params, host)
}

// BuildBank validates specs and constructs their parameters.
func BuildBank(specs []Spec, host Host) (*Bank, error) {
	if len(specs) == 0 {
		return nil, errors.New("bank has no parameters")
	}

	params := make([]Param, 0, len(specs))

	for i, s := range specs {
		p, err := s.Build(host)
		if err != nil {
			return nil, fmt.Errorf("param %d (%s): %w", i, s.ID, err)
		}

		params = append(params, p)
	}

	return NewBank(params...)
}

// Build validates the spec and creates its parameter.
func (s Spec) Build(host Host) (Param, error) {
	if s.ID == "" {
		return nil, errors.New("missing id")
	}

	name := s.Name
	if name == "" {
		name = s.ID
	}

	opts := []Option{WithHost(host), WithUnit(s.Unit)}

	switch s.Kind {
	case KindFloat:
		if s.Max <= s.Min {
			return nil, fmt.Errorf("max %v must exceed min %v", s.Max, s.Min)
		}

		if s.Default < s.Min || s.Default > s.Max {
			return nil, fmt.Errorf("default %v outside [%v, %v]", s.Default, s.Min, s.Max)
		}

		if s.Step < 0 {
			return nil, fmt.Errorf("negative step %v", s.Step)
		}

		if s.Precision != nil {
			opts = append(opts, WithPrecision(*s.Precision))
		}

		var rng Range = Linear{Min: s.Min, Max: s.Max}
		if s.Skew > 0 && s.Skew != 1 {
			rng = Skewed{Min: s.Min, Max: s.Max, Factor: s.Skew}
		}

		return NewFloat(s.ID, name, rng, s.Default, append(opts, WithStepSize(s.Step))...), nil

	case KindInt:
		if err := checkInt32(s.Min, s.Max, s.Default); err != nil {
			return nil, err
		}

		if s.Max < s.Min {
			return nil, fmt.Errorf("max %v below min %v", s.Max, s.Min)
		}

		if s.Default < s.Min || s.Default > s.Max {
			return nil, fmt.Errorf("default %v outside [%v, %v]", s.Default, s.Min, s.Max)
		}

		return NewInt(s.ID, name, int32(s.Min), int32(s.Max), int32(s.Default), opts...), nil

	case KindBool:
		return NewBool(s.ID, name, s.Default >= 0.5, opts...), nil

	case KindEnum:
		if len(s.Variants) == 0 {
			return nil, errors.New("enum needs at least one variant")
		}

		if err := checkInt32(s.Default); err != nil {
			return nil, err
		}

		def := int(s.Default)
		if def < 0 || def >= len(s.Variants) {
			return nil, fmt.Errorf("default index %d outside variants", def)
		}

		return NewEnum(s.ID, name, s.Variants, def, opts...), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, s.Kind)
	}
}

// DemoBank returns a small bank exercising every parameter kind.
func DemoBank(host Host) *Bank {
	opts := func(extra ...Option) []Option {
		return append([]Option{WithHost(host)}, extra...)
	}

	b, err := NewBank(
		NewFloat("gain", "Gain", Linear{Min: -30, Max: 30}, 0, opts(WithUnit("dB"), WithPrecision(1))...),
		NewFloat("pan", "Pan", Linear{Min: -1, Max: 1}, 0, opts(WithStepSize(0.01))...),
		NewFloat("cutoff", "Cutoff", Skewed{Min: 20, Max: 20000, Factor: 0.25}, 1000,
			opts(WithUnit("Hz"), WithPrecision(0))...),
		NewFloat("mix", "Mix", Linear{Min: 0, Max: 100}, 100, opts(WithUnit("%"), WithPrecision(0))...),
		NewInt("voices", "Voices", 1, 8, 4, opts()...),
		NewEnum("mode", "Mode", []string{"Clean", "Warm", "Crunch", "Fuzz"}, 0, opts()...),
		NewBool("bypass", "Bypass", false, opts()...),
	)
	if err != nil {
		panic(err) // ids above are unique
	}

	return b
}

// checkInt32 rejects values that would not survive conversion to int32.
func checkInt32(vs ...float32) error {
	for _, v := range vs {
		f := float64(v)

		if f != math.Trunc(f) {
			return fmt.Errorf("%v is not an integer", v)
		}

		if f < math.MinInt32 || f > math.MaxInt32 {
			return fmt.Errorf("%v outside the int32 range", v)
		}
	}

	return nil
}
