package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.ypl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestPrintsTree(t *testing.T) {
	out, err := run(t, writeSource(t, "val x = 1 + 2\n"))
	require.NoError(t, err)
	assert.Equal(t, "Program\n  | Variable Val x\n     | Binop +\n        | Int 1\n        | Int 2\n", out)
}

func TestUsage(t *testing.T) {
	_, err := run(t)
	assert.True(t, errors.Is(err, errUsage))
	assert.Equal(t, exitUsage, exitCode(err))

	_, err = run(t, "a.ypl", "b.ypl")
	assert.Equal(t, exitUsage, exitCode(err))
}

func TestExitCodes(t *testing.T) {
	_, err := run(t, filepath.Join(t.TempDir(), "missing.ypl"))
	require.Error(t, err)
	assert.Equal(t, exitNoInput, exitCode(err))

	_, err = run(t, writeSource(t, "val x = @"))
	require.Error(t, err)
	assert.Equal(t, exitData, exitCode(err))

	_, err = run(t, writeSource(t, "(1 + 2"))
	require.Error(t, err)
	assert.Equal(t, exitData, exitCode(err))
}

func TestPrintErr(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	printErr(&buf, errors.New("boom"))
	assert.Equal(t, "error: boom\n", buf.String())

	buf.Reset()
	printErr(&buf, errUsage)
	assert.Equal(t, "usage: yapl SOURCE_FILE_PATH\n", buf.String())
}

func TestHelpListsReservedWords(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Reserved words: break, continue, else, false, fun")
}
