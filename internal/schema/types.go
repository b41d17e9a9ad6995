// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema defines the parsed form of a model declaration: a named class
// with an ordered list of typed properties.
package schema

import "strings"

// TypeExpr is a declared property type. It is one of Primitive, Nullable,
// Array, List, Map or Named. Values are immutable.
type TypeExpr interface {
	// String renders the expression back to declaration syntax.
	String() string

	typeExpr()
}

// Primitive is a built-in scalar token such as "int" or "string".
type Primitive struct {
	Name string
}

// Nullable marks the wrapped expression as accepting null. It only ever
// appears as the outermost wrapper of an expression.
type Nullable struct {
	Inner TypeExpr
}

// Array is the "T[]" sequence sugar.
type Array struct {
	Elem TypeExpr
}

// List is an explicit generic sequence such as "List<T>".
type List struct {
	Elem TypeExpr
}

// Map is a generic associative container such as "Dictionary<K, V>".
type Map struct {
	Key   TypeExpr
	Value TypeExpr
}

// Named is any token that is not a known primitive. It is assumed to name a
// custom type or enum that is spelled the same in the generated code.
type Named struct {
	Name string
}

func (Primitive) typeExpr() {}
func (Nullable) typeExpr()  {}
func (Array) typeExpr()     {}
func (List) typeExpr()      {}
func (Map) typeExpr()       {}
func (Named) typeExpr()     {}

func (p Primitive) String() string { return p.Name }
func (n Nullable) String() string  { return n.Inner.String() + "?" }
func (a Array) String() string     { return a.Elem.String() + "[]" }
func (l List) String() string      { return "List<" + l.Elem.String() + ">" }
func (m Map) String() string {
	return "Dictionary<" + m.Key.String() + ", " + m.Value.String() + ">"
}
func (n Named) String() string { return n.Name }

// NewNullable wraps inner in a Nullable. An expression that is already
// nullable is returned unchanged.
func NewNullable(inner TypeExpr) TypeExpr {
	if n, ok := inner.(Nullable); ok {
		return n
	}
	return Nullable{Inner: inner}
}

// IsNullable reports whether the outermost expression carries the nullable marker.
func IsNullable(t TypeExpr) bool {
	_, ok := t.(Nullable)
	return ok
}

// PropertyDescriptor describes one declared property.
type PropertyDescriptor struct {
	Name       string
	SourceType TypeExpr
	IsRequired bool
	IsNullable bool
}

// NewProperty builds a PropertyDescriptor. A property is required when it
// carries an explicit required marker or when its type is not nullable.
func NewProperty(name string, sourceType TypeExpr, explicitRequired bool) PropertyDescriptor {
	nullable := IsNullable(sourceType)
	return PropertyDescriptor{
		Name:       name,
		SourceType: sourceType,
		IsRequired: explicitRequired || !nullable,
		IsNullable: nullable,
	}
}

// ClassDescriptor is a named record with its properties in declaration order.
type ClassDescriptor struct {
	Name       string
	Properties []PropertyDescriptor
}

// String renders the class in a compact declaration form, used in debug output.
func (c *ClassDescriptor) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	sb.WriteString(" {")
	for i, p := range c.Properties {
		if i > 0 {
			sb.WriteString(";")
		}
		sb.WriteString(" ")
		if p.IsRequired && p.IsNullable {
			sb.WriteString("required ")
		}
		sb.WriteString(p.SourceType.String())
		sb.WriteString(" ")
		sb.WriteString(p.Name)
	}
	sb.WriteString(" }")
	return sb.String()
}
