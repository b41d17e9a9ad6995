// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package source

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dacolabs/modelgen/internal/ctxlog"
	"github.com/dacolabs/modelgen/internal/schema"
	"github.com/dacolabs/modelgen/internal/translate"
	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
)

// loadJSONSchema reads an object JSON Schema. Its title, or else the file
// name, names the class. Properties listed in "required" carry the explicit
// required marker and a "null" member of the type makes a property nullable.
func loadJSONSchema(ctx context.Context, data []byte, filename string) (*schema.ClassDescriptor, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoDeclaration
	}

	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse JSON Schema: %w", err)
	}
	if len(s.Properties) == 0 && !hasType(&s, "object") {
		return nil, ErrNoDeclaration
	}

	name := s.Title
	if name == "" {
		base := filepath.Base(filename)
		base = strings.TrimSuffix(base, filepath.Ext(base))
		base = strings.TrimSuffix(base, ".schema")
		name = translate.ToPascalCase(base)
	}

	logger := ctxlog.FromContext(ctx)
	required := make(map[string]bool, len(s.Required))
	for _, r := range s.Required {
		required[r] = true
	}

	class := &schema.ClassDescriptor{Name: name}
	for _, propName := range orderedProperties(&s, extractKeyOrder(data)["properties"]) {
		expr := schemaType(s.Properties[propName], propName)
		logger.Debug("mapped JSON Schema property", "property", propName, "type", expr.String())
		class.Properties = append(class.Properties, schema.NewProperty(propName, expr, required[propName]))
	}
	return class, nil
}

// orderedProperties returns property names in their JSON order. Names
// missing from order are appended sorted.
func orderedProperties(s *jsonschema.Schema, order []string) []string {
	names := make([]string, 0, len(s.Properties))
	seen := make(map[string]bool, len(s.Properties))
	for _, key := range order {
		if _, ok := s.Properties[key]; ok && !seen[key] {
			names = append(names, key)
			seen[key] = true
		}
	}

	var rest []string
	for key := range s.Properties {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// schemaType converts a property schema to a type expression.
func schemaType(s *jsonschema.Schema, fieldName string) schema.TypeExpr {
	if s == nil {
		return schema.Named{Name: "dynamic"}
	}

	// anyOf: [X, {type: null}]
	if len(s.AnyOf) == 2 {
		for i, alt := range s.AnyOf {
			if alt != nil && hasType(alt, "null") && len(alt.Types) <= 1 {
				return schema.NewNullable(schemaType(s.AnyOf[1-i], fieldName))
			}
		}
	}

	if s.Ref != "" {
		return schema.Named{Name: defName(s.Ref)}
	}

	var base string
	nullable := false
	for _, t := range schemaTypes(s) {
		if t == "null" {
			nullable = true
			continue
		}
		base = t
	}

	var expr schema.TypeExpr
	switch base {
	case "string":
		switch s.Format {
		case "date-time":
			expr = schema.Primitive{Name: "DateTime"}
		case "date":
			expr = schema.Primitive{Name: "DateOnly"}
		case "time":
			expr = schema.Primitive{Name: "TimeOnly"}
		default:
			expr = schema.Primitive{Name: "string"}
		}
	case "integer":
		if s.Format == "int64" {
			expr = schema.Primitive{Name: "long"}
		} else {
			expr = schema.Primitive{Name: "int"}
		}
	case "number":
		if s.Format == "float" {
			expr = schema.Primitive{Name: "float"}
		} else {
			expr = schema.Primitive{Name: "double"}
		}
	case "boolean":
		expr = schema.Primitive{Name: "bool"}
	case "array":
		expr = schema.List{Elem: schemaType(s.Items, fieldName)}
	case "object":
		if s.AdditionalProperties != nil && len(s.Properties) == 0 {
			expr = schema.Map{Key: schema.Primitive{Name: "string"}, Value: schemaType(s.AdditionalProperties, fieldName)}
		} else if s.Title != "" {
			expr = schema.Named{Name: s.Title}
		} else {
			// Inline objects are expected to be declared as their own model.
			expr = schema.Named{Name: translate.ToPascalCase(fieldName)}
		}
	default:
		expr = schema.Named{Name: "dynamic"}
	}

	if nullable {
		return schema.NewNullable(expr)
	}
	return expr
}

func schemaTypes(s *jsonschema.Schema) []string {
	if s.Type != "" {
		return []string{s.Type}
	}
	return s.Types
}

func hasType(s *jsonschema.Schema, want string) bool {
	for _, t := range schemaTypes(s) {
		if t == want {
			return true
		}
	}
	return false
}

// defName extracts the definition name from a $ref string.
func defName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
