// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dacolabs/modelgen/internal/ctxlog"
	"github.com/dacolabs/modelgen/internal/schema"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// loadYAML reads the first YAML document. Later documents are ignored.
func loadYAML(ctx context.Context, data []byte, parser schema.TypeParser) (*schema.ClassDescriptor, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var d declaration
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoDeclaration
		}
		return nil, fmt.Errorf("failed to parse YAML declaration: %w", err)
	}
	if d.empty() {
		return nil, ErrNoDeclaration
	}

	var next declaration
	if err := dec.Decode(&next); err == nil && !next.empty() {
		ctxlog.FromContext(ctx).Warn("ignoring additional declarations", "class", d.Name, "ignored", next.Name)
	}

	return d.build(parser)
}

func loadJSON(data []byte, parser schema.TypeParser) (*schema.ClassDescriptor, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoDeclaration
	}

	var d declaration
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse JSON declaration: %w", err)
	}
	if d.empty() {
		return nil, ErrNoDeclaration
	}

	return d.build(parser)
}
