package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexpath/batch"
)

func writePairFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pairs.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestBatchCmd_SummaryTable(t *testing.T) {
	path := writePairFile(t, "abc bca\na b\n")

	out, err := runCommand(t, "batch", path, "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "START")
	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "bca")
	assert.Contains(t, out, "found")
}

func TestBatchCmd_WritesLog(t *testing.T) {
	pairs := writePairFile(t, "ab ba\n")
	logPath := filepath.Join(t.TempDir(), "results.log")

	_, err := runCommand(t, "batch", pairs, "--log", logPath)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ab ba found depth=1 path=ab->ba")
}

func TestBatchCmd_MalformedFile(t *testing.T) {
	path := writePairFile(t, "just-one-word\n")

	_, err := runCommand(t, "batch", path)
	assert.ErrorIs(t, err, batch.ErrBadPairLine)
}

func TestNewBatchCmd_Flags(t *testing.T) {
	cmd := newBatchCmd()
	assert.Equal(t, "batch <file>", cmd.Use)
	for _, name := range []string{"workers", "max-depth", "log", "no-sort"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}
