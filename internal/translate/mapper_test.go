// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"testing"

	"github.com/dacolabs/modelgen/internal/schema"
	"github.com/stretchr/testify/assert"
)

// stubResolver spells targets abstractly so tests check the algorithm,
// not a particular language.
type stubResolver struct{}

var stubAliases = map[string]string{
	"int":          "Integer",
	"byte":         "Integer",
	"string":       "Text",
	ByteArrayToken: "Bytes",
}

func (stubResolver) PrimitiveType(token string) (string, bool) {
	t, ok := stubAliases[token]
	return t, ok
}
func (stubResolver) SequenceType(elem string) string  { return "Sequence<" + elem + ">" }
func (stubResolver) AssocType(k, v string) string     { return "Assoc<" + k + ", " + v + ">" }
func (stubResolver) NullableType(inner string) string { return inner + "?" }
func (stubResolver) FormatClassName(name string) string {
	return name + "Model"
}
func (stubResolver) FormatFieldName(name string) string { return LowerFirst(name) }

func TestMapType(t *testing.T) {
	tests := []struct {
		name string
		expr schema.TypeExpr
		want string
	}{
		{
			name: "primitive alias",
			expr: schema.Primitive{Name: "int"},
			want: "Integer",
		},
		{
			name: "unknown primitive passes through",
			expr: schema.Primitive{Name: "decimal"},
			want: "decimal",
		},
		{
			name: "named passes through",
			expr: schema.Named{Name: "OrderStatus"},
			want: "OrderStatus",
		},
		{
			name: "nullable appends marker to mapped inner",
			expr: schema.Nullable{Inner: schema.List{Elem: schema.Primitive{Name: "int"}}},
			want: "Sequence<Integer>?",
		},
		{
			name: "array and list share a shape",
			expr: schema.Array{Elem: schema.Primitive{Name: "string"}},
			want: "Sequence<Text>",
		},
		{
			name: "nesting depth preserved",
			expr: schema.List{Elem: schema.List{Elem: schema.Primitive{Name: "int"}}},
			want: "Sequence<Sequence<Integer>>",
		},
		{
			name: "nested map",
			expr: schema.Map{
				Key:   schema.Primitive{Name: "string"},
				Value: schema.Map{Key: schema.Primitive{Name: "int"}, Value: schema.Primitive{Name: "int"}},
			},
			want: "Assoc<Text, Assoc<Integer, Integer>>",
		},
		{
			name: "byte array takes the generic array path",
			expr: schema.Array{Elem: schema.Primitive{Name: "byte"}},
			want: "Sequence<Integer>",
		},
		{
			name: "nullable element inside container",
			expr: schema.List{Elem: schema.Nullable{Inner: schema.Named{Name: "Address"}}},
			want: "Sequence<Address?>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapType(tt.expr, stubResolver{}, MapOptions{}))
		})
	}
}

func TestMapType_ByteArrays(t *testing.T) {
	opts := MapOptions{ByteArrays: true}

	assert.Equal(t, "Bytes", MapType(schema.ParseType("byte[]"), stubResolver{}, opts))
	assert.Equal(t, "Bytes?", MapType(schema.ParseType("byte[]?"), stubResolver{}, opts))
	assert.Equal(t, "Sequence<Bytes>", MapType(schema.ParseType("List<byte[]>"), stubResolver{}, opts))
	assert.Equal(t, "Sequence<Integer>", MapType(schema.ParseType("int[]"), stubResolver{}, opts))
}

func TestMapType_Idempotent(t *testing.T) {
	expr := schema.ParseType("Dictionary<string, List<int?>>?")

	first := MapType(expr, stubResolver{}, MapOptions{})
	second := MapType(expr, stubResolver{}, MapOptions{})

	assert.Equal(t, first, second)
	assert.Equal(t, "Assoc<Text, Sequence<Integer?>>?", first)
}

func TestMapType_NullableAppendsOnce(t *testing.T) {
	for _, text := range []string{"int", "OrderStatus", "int[]", "List<string?>", "Dictionary<string, int>"} {
		inner := schema.ParseType(text)
		plain := MapType(inner, stubResolver{}, MapOptions{})
		wrapped := MapType(schema.NewNullable(inner), stubResolver{}, MapOptions{})
		assert.Equal(t, plain+"?", wrapped, text)
	}
}
