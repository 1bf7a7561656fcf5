package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dylan-ru/sub-lator/internal/cli"
	"github.com/dylan-ru/sub-lator/internal/testutil"
)

func TestRunHelp(t *testing.T) {
	t.Parallel()

	var buf testutil.SafeBuffer
	require.NoError(t, run(&buf, []string{"help"}))
	require.Contains(t, buf.String(), "sublator")
	require.Contains(t, buf.String(), "Commands:")
}

func TestRunNoArgs(t *testing.T) {
	t.Parallel()

	var buf testutil.SafeBuffer
	require.NoError(t, run(&buf, nil))
	require.Contains(t, buf.String(), "Usage:")
}

func TestRunUnknownCommand(t *testing.T) {
	t.Parallel()

	var buf testutil.SafeBuffer
	err := run(&buf, []string{"frobnicate"})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestRunKeysFlow(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var buf testutil.SafeBuffer
	require.NoError(t, run(&buf, []string{"keys", "-config-dir", dir, "-provider", "groq", "add", "gsk_1234567890"}))

	var listBuf testutil.SafeBuffer
	require.NoError(t, run(&listBuf, []string{"keys", "-config-dir", dir, "-provider", "groq", "list"}))
	require.Contains(t, listBuf.String(), "gsk_1******890")
}
