package main

import (
	"fmt"
	"go/token"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultBuilderImport = "github.com/sghaida/carbuilder/builder"

// Variant describes one generated builder.
type Variant struct {
	// Name is the Go type name and, lower-cased, the registry key.
	Name string `yaml:"name"`

	Seat   string `yaml:"seat"`
	Engine string `yaml:"engine"`
	Wheel  string `yaml:"wheel"`
}

// Key is the registry name for the variant.
func (v Variant) Key() string { return strings.ToLower(v.Name) }

// Spec is the full input schema consumed by the generator.
type Spec struct {
	Package       string    `yaml:"package"`
	BuilderImport string    `yaml:"builderImport"`
	Variants      []Variant `yaml:"variants"`
}

// loadSpec reads, defaults and validates a spec file.
func loadSpec(path string) (*Spec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec: %w", err)
	}

	var spec Spec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse spec %s: %w", path, err)
	}

	applyDefaults(&spec)
	if err := validateSpec(&spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// applyDefaults fills builderImport and any missing part labels.
func applyDefaults(spec *Spec) {
	spec.Package = strings.TrimSpace(spec.Package)
	spec.BuilderImport = strings.TrimSpace(spec.BuilderImport)
	if spec.BuilderImport == "" {
		spec.BuilderImport = defaultBuilderImport
	}

	for i := range spec.Variants {
		v := &spec.Variants[i]
		v.Name = strings.TrimSpace(v.Name)
		if v.Seat == "" {
			v.Seat = v.Name + " Seat"
		}
		if v.Engine == "" {
			v.Engine = v.Name + " Engine"
		}
		if v.Wheel == "" {
			v.Wheel = v.Name + " Wheel"
		}
	}
}

// validateSpec checks a defaulted spec for usable names and duplicates.
func validateSpec(spec *Spec) error {
	var missingFields []string
	if spec.Package == "" {
		missingFields = append(missingFields, "package")
	}
	if len(spec.Variants) == 0 {
		missingFields = append(missingFields, "variants (must have at least 1)")
	}
	if len(missingFields) > 0 {
		return fmt.Errorf("spec missing required fields: %v", missingFields)
	}

	if !token.IsIdentifier(spec.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", spec.Package)
	}
	if spec.Package == "builder" {
		// The generated file refers to the builder package by that name.
		return fmt.Errorf("package must not be named %q", spec.Package)
	}

	seenKeys := make(map[string]struct{}, len(spec.Variants))
	for _, v := range spec.Variants {
		if !token.IsIdentifier(v.Name) || !token.IsExported(v.Name) {
			return fmt.Errorf("variant name %q must be an exported Go identifier", v.Name)
		}
		if v.Name == "RegisterVariants" {
			return fmt.Errorf("variant name %q collides with the generated helper", v.Name)
		}
		if _, ok := seenKeys[v.Key()]; ok {
			return fmt.Errorf("duplicate variant: %s", v.Name)
		}
		seenKeys[v.Key()] = struct{}{}
	}
	return nil
}
