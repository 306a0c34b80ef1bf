package cmdutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagErrorf(t *testing.T) {
	err := FlagErrorf("unknown package manager: %s", "deno")
	assert.Equal(t, "unknown package manager: deno", err.Error())

	var flagErr *FlagError
	require.ErrorAs(t, err, &flagErr)
}

func TestFlagErrorWrap(t *testing.T) {
	inner := fmt.Errorf("bad value")
	err := FlagErrorWrap(inner)

	var flagErr *FlagError
	require.ErrorAs(t, err, &flagErr)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, inner, flagErr.Unwrap())

	assert.NoError(t, FlagErrorWrap(nil))
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 3}
	assert.Equal(t, "exit status 3", err.Error())

	var exitErr *ExitError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &exitErr))
	assert.Equal(t, 3, exitErr.Code)
}

func TestArgValidators(t *testing.T) {
	cmd := &cobra.Command{Use: "create"}

	assert.NoError(t, MaximumArgs(1)(cmd, []string{"app"}))
	err := MaximumArgs(1)(cmd, []string{"a", "b"})
	var flagErr *FlagError
	require.ErrorAs(t, err, &flagErr)
	assert.Contains(t, err.Error(), "at most 1 argument, received 2")

	assert.NoError(t, NoArgs(cmd, nil))
	assert.ErrorAs(t, NoArgs(cmd, []string{"x"}), &flagErr)

	assert.NoError(t, ExactArgs(2, "<key> <value>")(cmd, []string{"k", "v"}))
	err = ExactArgs(2, "<key> <value>")(cmd, []string{"k"})
	assert.ErrorAs(t, err, &flagErr)
	assert.Contains(t, err.Error(), "<key> <value>")
}
