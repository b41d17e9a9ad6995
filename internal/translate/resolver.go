// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// TypeResolver supplies the target-language spelling of types and names.
// Each translator implements this interface; MapType and Prepare drive it.
type TypeResolver interface {
	// PrimitiveType looks token up in the primitive alias table.
	// It reports false when the token has no alias.
	PrimitiveType(token string) (string, bool)

	// SequenceType wraps an element type in the target sequence container.
	SequenceType(elemType string) string

	// AssocType wraps key and value types in the target associative container.
	AssocType(keyType, valueType string) string

	// NullableType appends the target nullability marker.
	NullableType(inner string) string

	// FormatClassName derives the generated class name from the declared one.
	FormatClassName(name string) string

	// FormatFieldName converts a declared property name to a field name.
	FormatFieldName(name string) string
}
