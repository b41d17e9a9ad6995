// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(output, suffix, capability *string, byteArrays *bool) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Placeholder("models").
				Validate(requiredValidator("output directory")).
				Value(output),
			huh.NewInput().
				Title("Class name suffix").
				Placeholder("Model").
				Validate(identifierValidator[struct{}](nil)).
				Value(suffix),
			huh.NewInput().
				Title("Implemented interface").
				Placeholder("JsonMutable").
				Validate(identifierValidator[struct{}](nil)).
				Value(capability),
		),
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("byte[] properties").
				Options(
					huh.NewOption("List<int> (default)", false),
					huh.NewOption("Uint8List", true),
				).
				Value(byteArrays),
		),
	).WithTheme(Theme()).Run()
}
