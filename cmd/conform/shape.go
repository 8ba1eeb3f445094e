package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/conformlabs/conform"
	"github.com/conformlabs/conform/internal/registry"
)

// shapeSpec is the on-disk form of an object shape. The YAML is decoded
// generically first and then bound here, so unknown keys surface as binding
// noise rather than silent drops.
type shapeSpec struct {
	Partial  bool              `mapstructure:"partial"`
	Keys     map[string]string `mapstructure:"keys"`
	Optional []string          `mapstructure:"optional"`
	Nullable []string          `mapstructure:"nullable"`
}

// loadShape reads a YAML shape file and builds the corresponding object
// inspector. Example:
//
//	partial: false
//	keys:
//	  name: string
//	  age: int
//	  email: email
//	optional: [age]
func loadShape(path string) (conform.Inspector, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shape file: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid shape file: %w", err)
	}

	var spec shapeSpec
	if err := mapstructure.Decode(doc, &spec); err != nil {
		return nil, fmt.Errorf("invalid shape file: %w", err)
	}
	return buildShape(spec)
}

func buildShape(spec shapeSpec) (conform.Inspector, error) {
	if len(spec.Keys) == 0 {
		return nil, fmt.Errorf("shape file declares no keys")
	}

	shape := conform.Shape{}
	for key, name := range spec.Keys {
		isT, ok := registry.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown inspector %q for key %q", name, key)
		}
		shape[key] = isT
	}
	for _, key := range spec.Optional {
		isT, ok := shape[key]
		if !ok {
			return nil, fmt.Errorf("optional key %q is not declared in keys", key)
		}
		shape[key] = conform.IsOptional(isT)
	}
	for _, key := range spec.Nullable {
		isT, ok := shape[key]
		if !ok {
			return nil, fmt.Errorf("nullable key %q is not declared in keys", key)
		}
		shape[key] = conform.IsNullable(isT)
	}

	slog.Debug("built shape", "keys", len(shape), "partial", spec.Partial)
	if spec.Partial {
		return conform.IsPartialOf(shape), nil
	}
	return conform.IsObjectOf(shape), nil
}
