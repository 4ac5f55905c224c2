package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func execCompletion(shell string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := newCompletionCmd()
	cmd.SetOut(stdout)
	err := runCompletion(cmd, shell)
	return stdout.String(), err
}

func TestCompletionBash(t *testing.T) {
	stdout, err := execCompletion("bash")
	assert.NoError(t, err)
	assert.NotEmpty(t, stdout)
	assert.Contains(t, stdout, "bash")
}

func TestCompletionZsh(t *testing.T) {
	stdout, err := execCompletion("zsh")
	assert.NoError(t, err)
	assert.NotEmpty(t, stdout)
}

func TestCompletionFish(t *testing.T) {
	stdout, err := execCompletion("fish")
	assert.NoError(t, err)
	assert.NotEmpty(t, stdout)
}

func TestCompletionPowershell(t *testing.T) {
	stdout, err := execCompletion("powershell")
	assert.NoError(t, err)
	assert.NotEmpty(t, stdout)
}

func TestCompletionInvalidShell(t *testing.T) {
	_, err := execCompletion("invalid")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported shell: invalid")
}

func TestCompletionAutoDetect(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")
	stdout := new(bytes.Buffer)
	cmd := newCompletionCmd()
	cmd.SetOut(stdout)
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.NoError(t, err)
	assert.NotEmpty(t, stdout.String())
}

func TestDetectShell(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/fish")
	assert.Equal(t, "fish", detectShell())

	t.Setenv("SHELL", "/bin/tcsh")
	assert.Equal(t, "", detectShell())
}
