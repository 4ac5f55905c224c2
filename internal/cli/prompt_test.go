package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlwaysYes(t *testing.T) {
	confirm := AlwaysYes()

	ok, err := confirm("Anything?")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewPromptKitComplete(t *testing.T) {
	pk := NewPromptKit()

	assert.NotNil(t, pk.Prompt)
	assert.NotNil(t, pk.Confirm)
	assert.NotNil(t, pk.MultiSelect)
}
