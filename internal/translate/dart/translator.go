// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package dart translates model declarations to Dart classes for
// json_serializable and equatable.
package dart

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dacolabs/modelgen/internal/schema"
	"github.com/dacolabs/modelgen/internal/translate"
)

//go:embed model.dart.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"dartString": dartString,
	"dartEscape": dartEscape,
}).ParseFS(tmplFS, "model.dart.tmpl"))

// bodySections are rendered inside the class braces, in this order.
var bodySections = []string{"fields", "constructor", "fromJson", "toJson", "copyWithKey", "props"}

const (
	// DefaultSuffix is appended to declared class names.
	DefaultSuffix = "Model"
	// DefaultCapability is the interface generated classes implement.
	DefaultCapability = "JsonMutable"
)

// Options configures a Translator. The zero value uses the defaults.
type Options struct {
	Suffix       string            // class name suffix, DefaultSuffix if empty
	Capability   string            // implemented interface, DefaultCapability if empty
	ByteArrays   bool              // map byte[] to Uint8List
	SkipPreamble bool              // omit banner, imports and part directive
	Imports      []string          // extra import URIs
	Types        map[string]string // primitive alias overrides
}

// Translator translates model declarations to Dart model classes.
type Translator struct {
	opts     Options
	resolver *resolver
}

// New creates a Translator.
func New(opts Options) *Translator {
	if opts.Suffix == "" {
		opts.Suffix = DefaultSuffix
	}
	if opts.Capability == "" {
		opts.Capability = DefaultCapability
	}
	return &Translator{
		opts:     opts,
		resolver: newResolver(opts.Suffix, opts.Types),
	}
}

// Name returns the translator's identifier.
func (t *Translator) Name() string {
	return "dart"
}

// FileExtension returns the file extension for Dart source files.
func (t *Translator) FileExtension() string {
	return ".dart"
}

// FileName returns the snake_case file name of the generated class.
func (t *Translator) FileName(className string) string {
	return t.baseName(className) + t.FileExtension()
}

func (t *Translator) baseName(className string) string {
	return translate.ToSnakeCase(t.resolver.FormatClassName(className))
}

// MapType maps a single declared type expression to its Dart spelling.
func (t *Translator) MapType(expr schema.TypeExpr) string {
	return translate.MapType(expr, t.resolver, t.mapOptions())
}

func (t *Translator) mapOptions() translate.MapOptions {
	return translate.MapOptions{ByteArrays: t.opts.ByteArrays}
}

// Translate converts a class declaration to a Dart model class.
func (t *Translator) Translate(class *schema.ClassDescriptor) ([]byte, error) {
	data, err := translate.Prepare(class, t.resolver, t.mapOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare model data: %w", err)
	}

	data.Extra["Capability"] = t.opts.Capability
	data.Extra["Imports"] = t.opts.Imports
	data.Extra["PartFile"] = t.baseName(class.Name) + ".g.dart"

	// checks if any field type needs dart:typed_data.
	data.Extra["NeedsTypedData"] = false
	for _, f := range data.Fields {
		if strings.Contains(f.Type, "Uint8List") {
			data.Extra["NeedsTypedData"] = true
		}
	}

	header, err := render("header", data)
	if err != nil {
		return nil, err
	}

	body := make([]string, 0, len(bodySections))
	for _, name := range bodySections {
		section, err := render(name, data)
		if err != nil {
			return nil, err
		}
		if section != "" {
			body = append(body, section)
		}
	}

	var out strings.Builder
	if !t.opts.SkipPreamble {
		preamble, err := render("preamble", data)
		if err != nil {
			return nil, err
		}
		out.WriteString(preamble)
		out.WriteString("\n\n")
	}
	out.WriteString(header)
	out.WriteString("\n")
	out.WriteString(strings.Join(body, "\n\n"))
	out.WriteString("\n}\n")

	return []byte(out.String()), nil
}

// render executes one named section and strips its surrounding blank lines.
func render(name string, data *translate.ModelData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return strings.Trim(buf.String(), "\n"), nil
}

var dartEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `$`, `\$`)

// dartString quotes s as a single-quoted Dart string literal.
func dartString(s string) string {
	return "'" + dartEscape(s) + "'"
}

// dartEscape escapes s for use inside a single-quoted Dart string, so it is
// neither terminated nor interpolated.
func dartEscape(s string) string {
	return dartEscaper.Replace(s)
}
