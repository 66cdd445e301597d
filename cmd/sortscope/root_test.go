package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "sortscope version "))
}

func TestShuffleCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "shuffle", "--values", "1,2,3,4,5", "--seed", "11")
	require.NoError(t, err)

	parts := strings.Split(strings.TrimSpace(out), ",")
	assert.ElementsMatch(t, []string{"1", "2", "3", "4", "5"}, parts)
}

func TestShuffleCommand_RejectsBadSize(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "shuffle", "--size", "3")
	assert.ErrorContains(t, err, "size must be between")
}

func TestDescribeCommand_Unknown(t *testing.T) {
	_, err := execute(t, "describe", "sleep")
	assert.ErrorContains(t, err, "unknown algorithm")
}
