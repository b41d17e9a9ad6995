// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package source

import (
	"bufio"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/dacolabs/modelgen/internal/ctxlog"
	"github.com/dacolabs/modelgen/internal/schema"
)

var (
	csTypeDecl = regexp.MustCompile(`\b(?:class|record|struct)\s+([A-Za-z_]\w*)`)

	// public [modifiers] Type Name { get ...
	csProperty = regexp.MustCompile(`^\s*((?:\[[^\]]*\]\s*)*)public\s+((?:(?:virtual|override|required|new|static|sealed)\s+)*)(.+?)\s+([A-Za-z_]\w*)\s*\{\s*get\b`)

	csScopeOpen = regexp.MustCompile(`\b(?:namespace|class|record|struct|interface|enum)\s+[A-Za-z_][\w.]*`)

	csAttributeLine = regexp.MustCompile(`^\s*(?:\[[^\]]*\]\s*)+$`)
	csRequiredAttr  = regexp.MustCompile(`\[\s*(?:[\w.]+(?:\([^)]*\))?\s*,\s*)*(?:System\.ComponentModel\.DataAnnotations\.)?Required(?:Attribute)?\b`)
)

// loadCSharp scans C# source for the first class, record or struct and its
// public auto-properties. A [Required] attribute or the required modifier is
// the explicit required marker.
func loadCSharp(ctx context.Context, data []byte, parser schema.TypeParser) (*schema.ClassDescriptor, error) {
	logger := ctxlog.FromContext(ctx)

	var (
		d               *declaration
		pendingRequired bool
	)

	scanner := bufio.NewScanner(strings.NewReader(stripComments(data)))
scan:
	for scanner.Scan() {
		for _, member := range splitMembers(scanner.Text()) {
			if strings.TrimSpace(member) == "" {
				continue
			}

			if m := csTypeDecl.FindStringSubmatch(member); m != nil && !csProperty.MatchString(member) {
				if d != nil {
					logger.Warn("ignoring additional declarations", "class", d.Name, "ignored", m[1])
					break scan
				}
				d = &declaration{Name: m[1]}
				pendingRequired = false
				continue
			}

			if d == nil {
				continue
			}

			if csAttributeLine.MatchString(member) {
				pendingRequired = pendingRequired || csRequiredAttr.MatchString(member)
				continue
			}

			m := csProperty.FindStringSubmatch(member)
			if m == nil {
				pendingRequired = false
				continue
			}

			attrs, modifiers, typ, name := m[1], m[2], m[3], m[4]
			required := pendingRequired || csRequiredAttr.MatchString(attrs) || hasModifier(modifiers, "required")
			pendingRequired = false
			if hasModifier(modifiers, "static") {
				continue
			}

			d.Properties = append(d.Properties, propertyDeclaration{
				Name:     name,
				Type:     typ,
				Required: required,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read C# source: %w", err)
	}

	if d == nil {
		return nil, ErrNoDeclaration
	}
	return d.build(parser)
}

// stripComments removes line and block comments. Newlines inside block
// comments are kept so the line structure survives, and double-quoted
// string literals are copied untouched.
func stripComments(src []byte) string {
	var (
		sb                        strings.Builder
		inLine, inBlock, inString bool
	)
	next := func(i int) byte {
		if i+1 < len(src) {
			return src[i+1]
		}
		return 0
	}

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case inBlock:
			if c == '*' && next(i) == '/' {
				inBlock = false
				i++
			} else if c == '\n' {
				sb.WriteByte('\n')
			}
		case inLine:
			if c == '\n' {
				inLine = false
				sb.WriteByte('\n')
			}
		case inString:
			sb.WriteByte(c)
			switch c {
			case '\\':
				if i+1 < len(src) {
					i++
					sb.WriteByte(src[i])
				}
			case '"', '\n':
				inString = false
			}
		case c == '/' && next(i) == '/':
			inLine = true
			i++
		case c == '/' && next(i) == '*':
			inBlock = true
			sb.WriteByte(' ')
			i++
		default:
			if c == '"' {
				inString = true
			}
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// splitMembers cuts a line into the pieces the scanner matches one at a
// time: a scope header up to its opening brace, and each member up to its
// closing brace or semicolon. Braces that close an enclosing scope are
// dropped.
func splitMembers(line string) []string {
	var (
		members []string
		cur     strings.Builder
		depth   int
	)
	flush := func() {
		members = append(members, cur.String())
		cur.Reset()
	}

	for _, r := range line {
		switch {
		case r == '{' && depth == 0 && csScopeOpen.MatchString(cur.String()):
			cur.WriteRune(r)
			flush()
		case r == '{':
			depth++
			cur.WriteRune(r)
		case r == '}' && depth == 0:
			flush()
		case r == '}':
			depth--
			cur.WriteRune(r)
			if depth == 0 {
				flush()
			}
		case r == ';' && depth == 0:
			cur.WriteRune(r)
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		flush()
	}
	return members
}

func hasModifier(modifiers, want string) bool {
	for _, m := range strings.Fields(modifiers) {
		if m == want {
			return true
		}
	}
	return false
}
