// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/modelgen/internal/config"
	"github.com/spf13/cobra"
)

var (
	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConfigNotFound indicates an explicitly requested config file doesn't exist.
	ErrConfigNotFound = errors.New("config file not found")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved configuration for a command invocation.
type Context struct {
	// Config is the loaded configuration with defaults applied.
	Config *config.Config

	// ConfigPath is the file the configuration came from, empty for defaults.
	ConfigPath string
}

// Load resolves the configuration and returns a new context.Context with the
// session Context stored in it. An empty path looks for modelgen.yaml in the
// current directory and falls back to defaults when there is none.
func Load(ctx context.Context, path string) (context.Context, error) {
	explicit := path != ""
	if !explicit {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, config.FileName)
	}

	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		if explicit {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return context.WithValue(ctx, contextKey{}, &Context{Config: config.Default()}), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	sessionCtx := &Context{
		Config:     cfg.WithDefaults(),
		ConfigPath: path,
	}

	return context.WithValue(ctx, contextKey{}, sessionCtx), nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sessionCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessionCtx
	}
	return nil
}

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	if cmd.Context() == nil {
		return nil
	}
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("session context not loaded")
	}
	return ctx, nil
}
