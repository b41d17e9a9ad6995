// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/dacolabs/modelgen/internal/schema"

// ByteArrayToken is the primitive table key for a byte sequence.
const ByteArrayToken = "byte[]"

// MapOptions tunes MapType.
type MapOptions struct {
	// ByteArrays maps "byte[]" through the ByteArrayToken table entry instead
	// of treating it as an ordinary array of byte. Off by default, in which
	// case the ByteArrayToken entry is never consulted.
	ByteArrays bool
}

// MapType translates a declared type expression into the target type string.
// Cases are checked in a fixed order: nullable, array, list, map, then the
// primitive alias table. Tokens without an alias are returned unchanged.
func MapType(expr schema.TypeExpr, r TypeResolver, opts MapOptions) string {
	switch e := expr.(type) {
	case schema.Nullable:
		return r.NullableType(MapType(e.Inner, r, opts))
	case schema.Array:
		if opts.ByteArrays && isByte(e.Elem) {
			if t, ok := r.PrimitiveType(ByteArrayToken); ok {
				return t
			}
		}
		return r.SequenceType(MapType(e.Elem, r, opts))
	case schema.List:
		return r.SequenceType(MapType(e.Elem, r, opts))
	case schema.Map:
		return r.AssocType(MapType(e.Key, r, opts), MapType(e.Value, r, opts))
	case schema.Primitive:
		return alias(r, e.Name)
	case schema.Named:
		return alias(r, e.Name)
	default:
		return expr.String()
	}
}

func alias(r TypeResolver, token string) string {
	if t, ok := r.PrimitiveType(token); ok {
		return t
	}
	return token
}

func isByte(t schema.TypeExpr) bool {
	p, ok := t.(schema.Primitive)
	return ok && p.Name == "byte"
}
