// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// ModelData is the complete input passed to a translator template.
type ModelData struct {
	Source string         // declared class name, e.g. "User"
	Name   string         // formatted class name, e.g. "UserModel"
	Fields []Field        // ordered as declared
	Extra  map[string]any // translator-specific template data
}

// Field represents a single property of the generated class.
type Field struct {
	Name     string // formatted field name, e.g. "id"
	Key      string // declared property name, used as the serialization key
	Type     string // fully resolved target type string
	Required bool   // explicit required marker or non-nullable type
	Nullable bool   // outermost declared type carries the nullable marker
}
