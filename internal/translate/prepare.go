// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dacolabs/modelgen/internal/schema"
)

// Prepare converts a class declaration into ModelData ready for template
// execution. Each property type is mapped once with MapType and field order
// is kept as declared. Two properties that format to the same field name
// are an error.
func Prepare(class *schema.ClassDescriptor, resolver TypeResolver, opts MapOptions) (*ModelData, error) {
	if class == nil || class.Name == "" {
		return nil, errors.New("class name is required")
	}

	fields := make([]Field, 0, len(class.Properties))
	seen := make(map[string]string, len(class.Properties))
	for _, p := range class.Properties {
		name := resolver.FormatFieldName(p.Name)
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("%s: properties %q and %q both become field %q", class.Name, prev, p.Name, name)
		}
		seen[name] = p.Name

		fields = append(fields, Field{
			Name:     name,
			Key:      p.Name,
			Type:     MapType(p.SourceType, resolver, opts),
			Required: p.IsRequired,
			Nullable: p.IsNullable,
		})
	}

	return &ModelData{
		Source: class.Name,
		Name:   resolver.FormatClassName(class.Name),
		Fields: fields,
		Extra:  make(map[string]any),
	}, nil
}

// LowerFirst lower-cases the first character of s and leaves the rest as is.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// ToSnakeCase converts a PascalCase or camelCase identifier to snake_case.
// Non-alphanumeric characters separate words and acronym runs stay together,
// so "HTTPRequestLog" becomes "http_request_log".
func ToSnakeCase(s string) string {
	runes := []rune(s)
	var sb strings.Builder
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "_") {
				sb.WriteByte('_')
			}
			continue
		}
		if unicode.IsUpper(r) && i > 0 && sb.Len() > 0 && !strings.HasSuffix(sb.String(), "_") {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				sb.WriteByte('_')
			}
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return strings.TrimSuffix(sb.String(), "_")
}

// ToPascalCase converts a snake_case or kebab-case string to PascalCase.
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' '
	})

	var sb strings.Builder
	for _, part := range parts {
		r, size := utf8.DecodeRuneInString(part)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(part[size:])
	}

	return sb.String()
}
