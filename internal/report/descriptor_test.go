package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/ctrlstyle"
)

func TestWriteDescriptor(t *testing.T) {
	d := ctrlstyle.Default().Compose(ctrlstyle.Checkbox(ctrlstyle.SizeMedium),
		ctrlstyle.InteractionState{Checked: true, Indeterminate: true})

	var buf bytes.Buffer
	require.NoError(t, WriteDescriptor(&buf, d, false))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "checkbox/medium checked+indeterminate\n"))
	assert.Contains(t, out, "checkedDefault")
	assert.Contains(t, out, "icon")
	assert.Contains(t, out, "dash")
	assert.Contains(t, out, "opacity")
}

func TestWriteDescriptorSwitchHandle(t *testing.T) {
	d := ctrlstyle.Default().Compose(ctrlstyle.Switch(ctrlstyle.SwitchSuccess, ctrlstyle.SizeSmall),
		ctrlstyle.InteractionState{On: true, Disabled: true})

	var buf bytes.Buffer
	require.NoError(t, WriteDescriptor(&buf, d, false))
	assert.Contains(t, buf.String(), "onSuccessDisabled")
	assert.Contains(t, buf.String(), "true")
	assert.Contains(t, buf.String(), "0.6")
}

func TestWriteExplain(t *testing.T) {
	var buf bytes.Buffer
	err := WriteExplain(&buf, ctrlstyle.Radio(ctrlstyle.SizeMedium),
		ctrlstyle.InteractionState{Invalid: true, Pressed: true}, false)
	require.NoError(t, err)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Resolution\n"))
	assert.Contains(t, out, "uncheckedInvalidPressed")
	assert.Contains(t, out, "rule invalid+pressed")
	assert.NotContains(t, out, "icon")
	assert.NotContains(t, out, "static")
}

func TestWriteMatrixMarkdown(t *testing.T) {
	ds := ctrlstyle.Default().ComposeAll(ctrlstyle.Radio(ctrlstyle.SizeSmall))

	var buf bytes.Buffer
	require.NoError(t, WriteMatrixMarkdown(&buf, ds))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	require.Len(t, lines, 2+len(ds))
	assert.True(t, strings.HasPrefix(lines[0], "| variant | state | background |"))
	assert.True(t, strings.HasSuffix(lines[0], "| opacity |"))
	assert.Equal(t, strings.Count(lines[0], "|"), strings.Count(lines[1], "|"))
	assert.True(t, strings.HasPrefix(lines[2], "| radio/small | idle |"))
}

func TestWriteMatrixMarkdownRejectsMixedFamilies(t *testing.T) {
	c := ctrlstyle.Default()
	ds := []ctrlstyle.StyleDescriptor{
		c.Compose(ctrlstyle.Radio(ctrlstyle.SizeSmall), ctrlstyle.InteractionState{}),
		c.Compose(ctrlstyle.Checkbox(ctrlstyle.SizeSmall), ctrlstyle.InteractionState{}),
	}
	var buf bytes.Buffer
	assert.Error(t, WriteMatrixMarkdown(&buf, ds))
}

func TestWriteMatrixMarkdownEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMatrixMarkdown(&buf, nil))
	assert.Zero(t, buf.Len())
}
