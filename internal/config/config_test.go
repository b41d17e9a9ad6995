// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	cfg := Config{
		Version: 1,
		Output:  "lib/models",
		Suffix:  "Dto",
		Types:   map[string]string{"Guid": "String"},
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, cfg.Version, loaded.Version)
	assert.Equal(t, cfg.Output, loaded.Output)
	assert.Equal(t, cfg.Suffix, loaded.Suffix)
	assert.Equal(t, cfg.Types, loaded.Types)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "valid config",
			cfg:     Config{Version: 1},
			wantErr: "",
		},
		{
			name:    "unsupported version",
			cfg:     Config{Version: 99},
			wantErr: "unsupported config version",
		},
		{
			name:    "negative jobs",
			cfg:     Config{Version: 1, Jobs: -1},
			wantErr: "jobs must not be negative",
		},
		{
			name:    "empty alias target",
			cfg:     Config{Version: 1, Types: map[string]string{"Guid": ""}},
			wantErr: "must name both types",
		},
		{
			name:    "empty import",
			cfg:     Config{Version: 1, Imports: []string{""}},
			wantErr: "imports must not contain empty entries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveFormat(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	cfg := Config{
		Version:    1,
		Output:     "lib/models",
		ByteArrays: true,
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	content, err := os.ReadFile(cfgPath) //nolint:gosec // test file path
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, "version: 1")
	assert.Contains(t, output, "output: lib/models")
	assert.Contains(t, output, "byteArrays: true")
	assert.NotContains(t, output, "suffix")
}

func TestConfig_Load(t *testing.T) {
	cfg, err := Load("testdata/valid.yaml")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "lib/models", cfg.Output)
	assert.Equal(t, "Dto", cfg.Suffix)
	assert.True(t, cfg.ByteArrays)
	assert.False(t, cfg.PreambleEnabled())
	assert.Equal(t, []string{"package:app/json_mutable.dart"}, cfg.Imports)
	assert.Equal(t, map[string]string{"Guid": "String"}, cfg.Types)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Load_NotFound(t *testing.T) {
	_, err := Load("testdata/nonexistent.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Invalid(t *testing.T) {
	_, err := Load("testdata/invalid.yaml")
	assert.Error(t, err)
}

func TestConfig_Save_InvalidPath(t *testing.T) {
	cfg := Config{Version: 1}

	err := cfg.Save("/nonexistent/directory/config.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Empty(t *testing.T) {
	tmpDir := t.TempDir()
	emptyFile := filepath.Join(tmpDir, "empty.yaml")
	require.NoError(t, os.WriteFile(emptyFile, []byte(""), 0o600))

	_, err := Load(emptyFile)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, DefaultTarget, cfg.Target)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultJobs, cfg.Jobs)
	assert.True(t, cfg.PreambleEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestConfig_WithDefaults_KeepsSetValues(t *testing.T) {
	cfg := (&Config{Version: 1, Target: "dart", Output: "out", Jobs: 1}).WithDefaults()

	assert.Equal(t, "out", cfg.Output)
	assert.Equal(t, 1, cfg.Jobs)
}
