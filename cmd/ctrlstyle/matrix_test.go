package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixCommand_Markdown(t *testing.T) {
	out, err := execute(t, "matrix", "--family", "switch")
	require.NoError(t, err)
	assert.Contains(t, out, "| variant | state |")
	assert.Contains(t, out, "switch/success/large")
	assert.Contains(t, out, "disabled+on+pressed")
}
