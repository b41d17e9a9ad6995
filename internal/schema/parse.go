// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import "strings"

// sourcePrimitives are the declaration tokens parsed as Primitive.
var sourcePrimitives = map[string]struct{}{
	"byte":     {},
	"short":    {},
	"int":      {},
	"long":     {},
	"bool":     {},
	"float":    {},
	"double":   {},
	"decimal":  {},
	"string":   {},
	"DateTime": {},
	"DateOnly": {},
	"TimeOnly": {},
}

var listContainers = map[string]struct{}{
	"List":                {},
	"IList":               {},
	"ICollection":         {},
	"IEnumerable":         {},
	"IReadOnlyList":       {},
	"IReadOnlyCollection": {},
}

var mapContainers = map[string]struct{}{
	"Dictionary":          {},
	"IDictionary":         {},
	"IReadOnlyDictionary": {},
}

// TypeParser turns declared type text into a TypeExpr.
type TypeParser struct {
	// OnUnresolved, if set, is called with the raw text of a map type whose
	// generic arguments could not be split into a key and a value. Such
	// types are kept as Named passthrough.
	OnUnresolved func(raw string)
}

// ParseType parses type text with a zero TypeParser.
func ParseType(text string) TypeExpr {
	return TypeParser{}.Parse(text)
}

// IsPrimitive reports whether token is parsed as a Primitive.
func IsPrimitive(token string) bool {
	_, ok := sourcePrimitives[token]
	return ok
}

// Parse parses text. Parsing never fails: anything it does not recognise
// becomes a Named expression holding the text verbatim.
func (p TypeParser) Parse(text string) TypeExpr {
	text = strings.TrimSpace(text)
	if base := strings.TrimRight(text, "?"); base != text {
		return NewNullable(p.parseBare(base))
	}
	return p.parseBare(text)
}

func (p TypeParser) parseBare(text string) TypeExpr {
	text = strings.TrimSpace(text)

	if elem, ok := strings.CutSuffix(text, "[]"); ok && elem != "" {
		return Array{Elem: p.Parse(elem)}
	}

	if name, args, ok := cutGeneric(text); ok {
		if _, isList := listContainers[name]; isList {
			return List{Elem: p.Parse(args)}
		}
		if _, isMap := mapContainers[name]; isMap {
			// Split on the first comma only.
			key, value, found := strings.Cut(args, ",")
			key, value = strings.TrimSpace(key), strings.TrimSpace(value)
			if !found || key == "" || value == "" {
				if p.OnUnresolved != nil {
					p.OnUnresolved(text)
				}
				return Named{Name: text}
			}
			return Map{Key: p.Parse(key), Value: p.Parse(value)}
		}
		if name == "Nullable" {
			return NewNullable(p.Parse(args))
		}
	}

	if IsPrimitive(text) {
		return Primitive{Name: text}
	}
	return Named{Name: text}
}

// cutGeneric splits "Name<args>" into its name and argument text.
func cutGeneric(text string) (name, args string, ok bool) {
	open := strings.IndexByte(text, '<')
	if open <= 0 || !strings.HasSuffix(text, ">") {
		return "", "", false
	}
	return strings.TrimSpace(text[:open]), text[open+1 : len(text)-1], true
}
