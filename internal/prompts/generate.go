// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// RunGenerateForm prompts for the declaration files and output directory.
// The output prompt is skipped when askOutput is false.
func RunGenerateForm(inputs *[]string, output *string, askOutput bool) error {
	var paths string
	fields := []huh.Field{
		huh.NewInput().
			Title("Declaration files").
			Description("Comma-separated .cs, .yaml, .json, .schema.json or .hcl files").
			Placeholder("e.g., models/User.cs").
			Validate(pathsValidator).
			Value(&paths),
	}
	if askOutput {
		fields = append(fields, huh.NewInput().
			Title("Output directory").
			Placeholder("models").
			Validate(requiredValidator("output directory")).
			Value(output))
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run(); err != nil {
		return err
	}

	*inputs = splitPaths(paths)
	return nil
}

func pathsValidator(s string) error {
	paths := splitPaths(s)
	if len(paths) == 0 {
		return errors.New("at least one file is required")
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return errors.New(p + ": file not found")
		}
	}
	return nil
}

func splitPaths(s string) []string {
	var paths []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
