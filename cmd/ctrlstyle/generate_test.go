package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCommand_WritesGoFile(t *testing.T) {
	out, err := execute(t, "generate", "--output", "gen/tokens_gen.go", "--package", "gen")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated gen/tokens_gen.go")

	data, err := os.ReadFile(filepath.Join("gen", "tokens_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package gen")
	assert.Contains(t, string(data), "DO NOT EDIT")
}

func TestGenerateCommand_CSSToStdout(t *testing.T) {
	out, err := execute(t, "generate", "--format", "css")
	require.NoError(t, err)
	assert.Contains(t, out, ":root {")
	assert.Contains(t, out, "--button--shape-pill--border-radius: 9999px;")
}
