// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dacolabs/modelgen/internal/config"
	"github.com/dacolabs/modelgen/internal/ctxlog"
	"github.com/dacolabs/modelgen/internal/session"
	"github.com/dacolabs/modelgen/internal/translate"
	"github.com/dacolabs/modelgen/internal/translate/dart"
	"github.com/dacolabs/modelgen/internal/version"
	"github.com/spf13/cobra"
)

// Env carries values the entry point reads from the process environment.
type Env struct {
	// ConfigPath is the default for --config (MODELGEN_CONFIG).
	ConfigPath string
}

// skipSession marks commands that run without a loaded configuration, so a
// broken modelgen.yaml does not stop them.
const skipSession = "modelgen/skip-session"

type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(env Env) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "modelgen",
		Short:         "Generate Dart model classes from model declarations",
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return preRunLoad(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", env.ConfigPath, "Path to "+config.FileName)
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newMapCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// preRunLoad installs the logger and loads the session into the command's context.
func preRunLoad(cmd *cobra.Command, opts *rootOptions) error {
	logger := ctxlog.New(cmd.ErrOrStderr(), opts.verbose)
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	if _, skip := cmd.Annotations[skipSession]; skip {
		cmd.SetContext(ctx)
		return nil
	}

	ctx, err := session.Load(ctx, opts.configPath)
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}

// translatorsFor builds the translator registry for a configuration.
func translatorsFor(cfg *config.Config) translate.Register {
	translators := make(translate.Register)
	translators.Add(dart.New(dart.Options{
		Suffix:       cfg.Suffix,
		Capability:   cfg.Capability,
		ByteArrays:   cfg.ByteArrays,
		SkipPreamble: !cfg.PreambleEnabled(),
		Imports:      cfg.Imports,
		Types:        cfg.Types,
	}))
	return translators
}
