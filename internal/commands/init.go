// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dacolabs/modelgen/internal/config"
	"github.com/dacolabs/modelgen/internal/prompts"
	"github.com/dacolabs/modelgen/internal/translate/dart"
	"github.com/spf13/cobra"
)

type initOptions struct {
	output         string
	suffix         string
	capability     string
	byteArrays     bool
	force          bool
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a modelgen.yaml configuration file",
		Long:  `Create a modelgen.yaml configuration file in the current directory.`,
		Example: `  # Interactive mode
  modelgen init

  # Non-interactive
  modelgen init --output lib/models --suffix Dto --non-interactive`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSession: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutput, "Output directory for generated models")
	cmd.Flags().StringVarP(&opts.suffix, "suffix", "s", dart.DefaultSuffix, "Suffix appended to class names")
	cmd.Flags().StringVar(&opts.capability, "capability", dart.DefaultCapability, "Interface implemented by generated classes")
	cmd.Flags().BoolVar(&opts.byteArrays, "byte-arrays", false, "Map byte[] to Uint8List instead of List<int>")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing configuration")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfgPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		if !opts.force {
			return errors.New(config.FileName + " already exists; use --force to overwrite")
		}
		prompts.PrintWarning(cmd.ErrOrStderr(), "Overwriting existing "+config.FileName)
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&opts.output, &opts.suffix, &opts.capability, &opts.byteArrays); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version:    config.CurrentConfigVersion,
		Output:     opts.output,
		Suffix:     opts.suffix,
		Capability: opts.capability,
		ByteArrays: opts.byteArrays,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.FileName, err)
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: cfgPath},
		{Label: "Output", Value: cfg.Output},
		{Label: "Suffix", Value: cfg.Suffix},
		{Label: "Byte arrays", Value: strconv.FormatBool(cfg.ByteArrays)},
	}, "Initialization completed")
	return nil
}
