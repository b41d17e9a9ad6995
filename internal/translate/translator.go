// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate turns parsed model declarations into source code for a
// target language.
package translate

import (
	"fmt"
	"sort"

	"github.com/dacolabs/modelgen/internal/schema"
)

// Translator defines the interface all target-language translators implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "dart")
	Name() string

	// Translate converts a class declaration to target source text.
	Translate(class *schema.ClassDescriptor) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".dart")
	FileExtension() string

	// FileName returns the output file name for a source class name,
	// including the extension (e.g., "User" -> "user_model.dart").
	FileName(className string) string
}

// Register maps translator names to translators.
type Register map[string]Translator

// Add registers t under its own name.
func (r Register) Add(t Translator) {
	r[t.Name()] = t
}

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
