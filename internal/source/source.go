// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package source loads model declarations from files and turns them into
// schema.ClassDescriptor values.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dacolabs/modelgen/internal/ctxlog"
	"github.com/dacolabs/modelgen/internal/schema"
)

var (
	// ErrNoDeclaration indicates the input contains no model declaration.
	// Callers treat it as "nothing to do" rather than a failure.
	ErrNoDeclaration = errors.New("no model declaration found")

	// ErrUnsupportedFormat indicates the file extension has no loader.
	ErrUnsupportedFormat = errors.New("unsupported declaration format")
)

// Format identifies a declaration file format.
type Format string

// Supported declaration formats.
const (
	FormatYAML       Format = "yaml"
	FormatJSON       Format = "json"
	FormatJSONSchema Format = "jsonschema"
	FormatHCL        Format = "hcl"
	FormatCSharp     Format = "csharp"
)

// Extensions lists the file extensions LoadFile understands.
var Extensions = []string{".yaml", ".yml", ".json", ".schema.json", ".hcl", ".cs"}

// DetectFormat chooses a Format from the file name.
func DetectFormat(path string) (Format, error) {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".schema.json"):
		return FormatJSONSchema, nil
	case strings.HasSuffix(name, ".json"):
		return FormatJSON, nil
	case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
		return FormatYAML, nil
	case strings.HasSuffix(name, ".hcl"):
		return FormatHCL, nil
	case strings.HasSuffix(name, ".cs"):
		return FormatCSharp, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// LoadFile reads and parses the declaration in path.
func LoadFile(ctx context.Context, path string) (*schema.ClassDescriptor, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}

	return Load(ctx, format, data, path)
}

// Load parses data in the given format. filename is used for diagnostics
// and, for JSON Schema without a title, to name the class.
func Load(ctx context.Context, format Format, data []byte, filename string) (*schema.ClassDescriptor, error) {
	logger := ctxlog.FromContext(ctx).With("file", filename)
	parser := schema.TypeParser{
		OnUnresolved: func(raw string) {
			logger.Warn("map type arguments could not be split, keeping type as written", "type", raw)
		},
	}

	var (
		class *schema.ClassDescriptor
		err   error
	)
	switch format {
	case FormatYAML:
		class, err = loadYAML(ctx, data, parser)
	case FormatJSON:
		class, err = loadJSON(data, parser)
	case FormatJSONSchema:
		class, err = loadJSONSchema(ctx, data, filename)
	case FormatHCL:
		class, err = loadHCL(ctx, data, filename, parser)
	case FormatCSharp:
		class, err = loadCSharp(ctx, data, parser)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded declaration", "class", class.Name, "properties", len(class.Properties))
	return class, nil
}

// declaration is the shared shape of YAML, JSON and HCL declarations.
type declaration struct {
	Name       string                `yaml:"name" json:"name"`
	Properties []propertyDeclaration `yaml:"properties" json:"properties"`
}

type propertyDeclaration struct {
	Name     string `yaml:"name" json:"name"`
	Type     string `yaml:"type" json:"type"`
	Required bool   `yaml:"required" json:"required"`
}

func (d *declaration) empty() bool {
	return d.Name == "" && len(d.Properties) == 0
}

// build validates the declaration and parses every property type.
func (d *declaration) build(parser schema.TypeParser) (*schema.ClassDescriptor, error) {
	if d.Name == "" {
		return nil, errors.New("declaration has no name")
	}

	class := &schema.ClassDescriptor{
		Name:       d.Name,
		Properties: make([]schema.PropertyDescriptor, 0, len(d.Properties)),
	}
	seen := make(map[string]struct{}, len(d.Properties))
	for i, p := range d.Properties {
		if p.Name == "" {
			return nil, fmt.Errorf("%s: property %d has no name", d.Name, i)
		}
		if strings.TrimSpace(p.Type) == "" {
			return nil, fmt.Errorf("%s.%s: property has no type", d.Name, p.Name)
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("%s.%s: duplicate property", d.Name, p.Name)
		}
		seen[p.Name] = struct{}{}

		class.Properties = append(class.Properties, schema.NewProperty(p.Name, parser.Parse(p.Type), p.Required))
	}
	return class, nil
}
