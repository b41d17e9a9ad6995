// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dacolabs/modelgen/internal/config"
	"github.com/dacolabs/modelgen/internal/ctxlog"
	"github.com/dacolabs/modelgen/internal/prompts"
	"github.com/dacolabs/modelgen/internal/schema"
	"github.com/dacolabs/modelgen/internal/session"
	"github.com/dacolabs/modelgen/internal/source"
	"github.com/dacolabs/modelgen/internal/translate"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type generateOptions struct {
	output         string
	target         string
	jobs           int
	stdout         bool
	nonInteractive bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [files or directories...]",
		Short: "Generate model classes from declaration files",
		Long: fmt.Sprintf(`Generate one model class per declaration file.

Supported inputs: %s
Directories are searched recursively for supported files.
Files without a declaration are skipped.`, strings.Join(source.Extensions, ", ")),
		Example: `  # Interactive mode
  modelgen generate

  # Generate a single model
  modelgen generate models/User.cs

  # Generate every declaration in a directory into lib/models
  modelgen generate declarations --output lib/models

  # Print the generated code instead of writing files
  modelgen generate user.yaml --stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (default from config)")
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", fmt.Sprintf("Target language (%s)", strings.Join(translatorsFor(config.Default()).Available(), ", ")))
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "Number of files processed concurrently (default from config)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Write generated code to stdout")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Fail instead of prompting for missing inputs")

	return cmd
}

// generated is the outcome of one input file.
type generated struct {
	input   string
	class   *schema.ClassDescriptor
	data    []byte
	skipped bool
	err     error
}

func runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	sessionCtx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	cfg := sessionCtx.Config

	target := cfg.Target
	if opts.target != "" {
		target = opts.target
	}
	output := cfg.Output
	if cmd.Flags().Changed("output") {
		output = opts.output
	}
	jobs := cfg.Jobs
	if opts.jobs > 0 {
		jobs = opts.jobs
	}

	translators := translatorsFor(cfg)
	translator, err := translators.Get(target)
	if err != nil {
		return fmt.Errorf("unsupported target %q. Available targets: %s",
			target, strings.Join(translators.Available(), ", "))
	}

	inputs, err := expandInputs(args)
	if err != nil {
		return err
	}

	// Prompt for any missing values
	if len(inputs) == 0 {
		if opts.nonInteractive {
			return errors.New("no declaration files given")
		}
		askOutput := !cmd.Flags().Changed("output") && !opts.stdout
		if err := prompts.RunGenerateForm(&inputs, &output, askOutput); err != nil {
			return err
		}
	}
	if output == "" && !opts.stdout {
		return errors.New("output directory is required")
	}

	results, err := generateAll(cmd.Context(), translator, inputs, jobs)
	if err != nil {
		return err
	}

	return writeResults(cmd, translator, results, output, opts.stdout)
}

// expandInputs replaces directories with the supported files below them.
func expandInputs(args []string) ([]string, error) {
	var inputs []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			// Missing files are reported per input.
			inputs = append(inputs, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if _, formatErr := source.DetectFormat(path); formatErr == nil {
				inputs = append(inputs, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", arg, err)
		}
	}
	return inputs, nil
}

// generateAll loads and translates every input concurrently. Results keep
// the order of inputs. Only cancellation is returned as an error; per-file
// failures are recorded in the results.
func generateAll(ctx context.Context, translator translate.Translator, inputs []string, jobs int) ([]generated, error) {
	results := make([]generated, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = generateOne(ctx, translator, input)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func generateOne(ctx context.Context, translator translate.Translator, input string) generated {
	logger := ctxlog.FromContext(ctx)

	class, err := source.LoadFile(ctx, input)
	if errors.Is(err, source.ErrNoDeclaration) {
		logger.Info("nothing to generate", "file", input)
		return generated{input: input, skipped: true}
	}
	if err != nil {
		return generated{input: input, err: err}
	}

	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.Debug("parsed declaration", "file", input, "descriptor", spew.Sdump(class))
	}

	data, err := translator.Translate(class)
	if err != nil {
		return generated{input: input, class: class, err: err}
	}
	return generated{input: input, class: class, data: data}
}

func writeResults(cmd *cobra.Command, translator translate.Translator, results []generated, output string, toStdout bool) error {
	out := cmd.OutOrStdout()
	status := out
	if toStdout {
		status = cmd.ErrOrStderr()
	}

	printf(status, "Generating %d model(s) with %s...\n", len(results), translator.Name())

	if !toStdout {
		if err := os.MkdirAll(output, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var errs []string
	written := make(map[string]string)
	successCount := 0

	for _, r := range results {
		if r.err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", r.input, r.err))
			continue
		}
		if r.skipped {
			printf(status, "  Skipping %s (no declaration found)\n", r.input)
			continue
		}

		if toStdout {
			if successCount > 0 {
				printf(out, "\n")
			}
			if _, err := out.Write(r.data); err != nil {
				return err
			}
			successCount++
			continue
		}

		outFile := filepath.Join(output, translator.FileName(r.class.Name))
		if prev, dup := written[outFile]; dup {
			errs = append(errs, fmt.Sprintf("%s: %s was already generated from %s", r.input, outFile, prev))
			continue
		}

		if err := os.WriteFile(outFile, r.data, 0o644); err != nil { //nolint:gosec // generated source is meant to be readable
			errs = append(errs, fmt.Sprintf("%s: %v", r.input, err))
			continue
		}
		written[outFile] = r.input
		printf(status, "  %s\n", outFile)
		successCount++
	}

	printf(status, "\nSuccessfully generated %d model(s)\n", successCount)

	if len(errs) > 0 {
		printf(status, "\nErrors:\n")
		for _, e := range errs {
			printf(status, "  - %s\n", e)
		}
		return fmt.Errorf("failed to generate %d model(s)", len(errs))
	}

	return nil
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
