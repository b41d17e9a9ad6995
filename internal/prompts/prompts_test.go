// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPaths(t *testing.T) {
	assert.Equal(t, []string{"a.cs", "b.yaml"}, splitPaths(" a.cs , ,b.yaml "))
	assert.Nil(t, splitPaths(" , "))
}

func TestPathsValidator(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "User.cs")
	require.NoError(t, os.WriteFile(existing, []byte("class User {}"), 0o600))

	assert.NoError(t, pathsValidator(existing))
	assert.Error(t, pathsValidator(""))
	assert.ErrorContains(t, pathsValidator(existing+", missing.cs"), "missing.cs: file not found")
}

func TestIdentifierValidator(t *testing.T) {
	validate := identifierValidator(map[string]struct{}{"Taken": {}})

	assert.NoError(t, validate("Model"))
	assert.NoError(t, validate("_Dto2"))
	assert.Error(t, validate(""))
	assert.Error(t, validate("2Fast"))
	assert.Error(t, validate("Has-Dash"))
	assert.Error(t, validate("Taken"))
}

func TestRequiredValidator(t *testing.T) {
	validate := requiredValidator("output directory")

	assert.NoError(t, validate("models"))
	assert.EqualError(t, validate(""), "output directory is required")
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, []ResultField{{Label: "Config", Value: "modelgen.yaml"}}, "Done")

	assert.Contains(t, buf.String(), "Config:")
	assert.Contains(t, buf.String(), "modelgen.yaml")
	assert.Contains(t, buf.String(), "Done")
}
