package exec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealRunner_ExitCode(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		expectCode int
	}{
		{"exit 0", []string{"-c", "exit 0"}, 0},
		{"exit 1", []string{"-c", "exit 1"}, 1},
		{"exit 42", []string{"-c", "exit 42"}, 42},
	}

	r := NewRealRunner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.Run(context.Background(), "sh", tt.args, RunOpts{})
			require.NoError(t, err)
			assert.Equal(t, tt.expectCode, result.ExitCode)
		})
	}
}

func TestRealRunner_StdoutStderr(t *testing.T) {
	r := NewRealRunner()
	result, err := r.Run(context.Background(), "sh", []string{"-c", "echo out; echo err >&2"}, RunOpts{})
	require.NoError(t, err)

	assert.Contains(t, result.Stdout, "out")
	assert.Contains(t, result.Stderr, "err")
}

func TestRealRunner_Dir(t *testing.T) {
	dir := t.TempDir()
	r := NewRealRunner()
	result, err := r.Run(context.Background(), "pwd", nil, RunOpts{Dir: dir})
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, dir)
}

func TestRealRunner_BinaryNotFound(t *testing.T) {
	r := NewRealRunner()
	_, err := r.Run(context.Background(), "devrando-no-such-binary", nil, RunOpts{})
	assert.Error(t, err)
}
