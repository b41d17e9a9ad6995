// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/dacolabs/modelgen/internal/ctxlog"
	"github.com/dacolabs/modelgen/internal/schema"
	"github.com/dacolabs/modelgen/internal/session"
	"github.com/spf13/cobra"
)

// typeMapper is implemented by translators that can map a single type.
type typeMapper interface {
	MapType(expr schema.TypeExpr) string
}

func newMapCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "map <type>...",
		Short: "Show how declared types are mapped",
		Long:  `Print the target type for each declared type expression, using the current configuration.`,
		Example: `  # Map a single type
  modelgen map "Dictionary<string, List<int?>>?"

  # Map several types at once
  modelgen map int "byte[]" DateTime?`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd, args, target)
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "Target language (default from config)")

	return cmd
}

func runMap(cmd *cobra.Command, args []string, target string) error {
	sessionCtx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	if target == "" {
		target = sessionCtx.Config.Target
	}

	translator, err := translatorsFor(sessionCtx.Config).Get(target)
	if err != nil {
		return err
	}
	mapper, ok := translator.(typeMapper)
	if !ok {
		return fmt.Errorf("target %q does not support type mapping", target)
	}

	logger := ctxlog.FromContext(cmd.Context())
	parser := schema.TypeParser{
		OnUnresolved: func(raw string) {
			logger.Warn("map type arguments could not be split, keeping type as written", "type", raw)
		},
	}

	for _, arg := range args {
		printf(cmd.OutOrStdout(), "%s -> %s\n", arg, mapper.MapType(parser.Parse(arg)))
	}
	return nil
}
