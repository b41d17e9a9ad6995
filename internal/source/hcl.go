// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package source

import (
	"context"
	"fmt"

	"github.com/dacolabs/modelgen/internal/ctxlog"
	"github.com/dacolabs/modelgen/internal/schema"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclFile is the top-level structure of an HCL declaration file:
//
//	model "User" {
//	  property "Id" {
//	    type     = "int"
//	    required = true
//	  }
//	}
type hclFile struct {
	Models []*hclModel `hcl:"model,block"`
}

type hclModel struct {
	Name       string         `hcl:"name,label"`
	Properties []*hclProperty `hcl:"property,block"`
}

type hclProperty struct {
	Name     string `hcl:"name,label"`
	Type     string `hcl:"type"`
	Required bool   `hcl:"required,optional"`
}

func loadHCL(ctx context.Context, data []byte, filename string, parser schema.TypeParser) (*schema.ClassDescriptor, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	if len(parsed.Models) == 0 {
		return nil, ErrNoDeclaration
	}
	if len(parsed.Models) > 1 {
		ctxlog.FromContext(ctx).Warn("ignoring additional declarations",
			"class", parsed.Models[0].Name, "ignored", len(parsed.Models)-1)
	}

	m := parsed.Models[0]
	d := declaration{Name: m.Name}
	for _, p := range m.Properties {
		d.Properties = append(d.Properties, propertyDeclaration{
			Name:     p.Name,
			Type:     p.Type,
			Required: p.Required,
		})
	}
	return d.build(parser)
}
