// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/dacolabs/modelgen/internal/version"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

type versionOptions struct {
	short  bool
	output string
}

func newVersionCmd() *cobra.Command {
	opts := &versionOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show modelgen version information",
		Example: `  # Show the version
  modelgen version

  # Machine-readable build information
  modelgen version --output json`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSession: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.short, "short", false, "Print only the version number")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, json)")

	return cmd
}

func runVersion(cmd *cobra.Command, opts *versionOptions) error {
	out := cmd.OutOrStdout()

	if opts.short {
		_, err := fmt.Fprintln(out, version.Short())
		return err
	}

	switch opts.output {
	case "text":
		_, err := fmt.Fprintln(out, version.Current())
		return err
	case "json":
		data, err := json.MarshalIndent(version.Current(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode version: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	default:
		return fmt.Errorf("unsupported output format %q (text, json)", opts.output)
	}
}
