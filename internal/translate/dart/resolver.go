// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package dart

import (
	"maps"

	"github.com/dacolabs/modelgen/internal/translate"
)

// primitives is the declared-token to Dart-type alias table. Lookups are
// case-sensitive and match the whole token.
var primitives = map[string]string{
	"byte":                   "int",
	"short":                  "int",
	"int":                    "int",
	"long":                   "int",
	"bool":                   "bool",
	"float":                  "double",
	"double":                 "double",
	"decimal":                "double",
	"string":                 "String",
	"DateTime":               "DateTime",
	"DateOnly":               "DateTime",
	"TimeOnly":               "Duration",
	translate.ByteArrayToken: "Uint8List",
}

type resolver struct {
	suffix  string
	aliases map[string]string
}

func newResolver(suffix string, overrides map[string]string) *resolver {
	aliases := maps.Clone(primitives)
	maps.Copy(aliases, overrides)
	return &resolver{suffix: suffix, aliases: aliases}
}

func (r *resolver) PrimitiveType(token string) (string, bool) {
	t, ok := r.aliases[token]
	return t, ok
}

func (r *resolver) SequenceType(elemType string) string {
	return "List<" + elemType + ">"
}

func (r *resolver) AssocType(keyType, valueType string) string {
	return "Map<" + keyType + ", " + valueType + ">"
}

func (r *resolver) NullableType(inner string) string {
	return inner + "?"
}

func (r *resolver) FormatClassName(name string) string {
	return name + r.suffix
}

func (r *resolver) FormatFieldName(name string) string {
	return translate.LowerFirst(name)
}
