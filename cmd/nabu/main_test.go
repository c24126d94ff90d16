package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveParser_KnownNamesReturnNilFunc(t *testing.T) {
	fn, err := resolveParser("pdfminer")
	require.NoError(t, err)
	assert.Nil(t, fn)

	fn, err = resolveParser("")
	require.NoError(t, err)
	assert.Nil(t, fn)
}

func TestResolveParser_UnknownNameErrors(t *testing.T) {
	_, err := resolveParser("nonexistent")
	assert.Error(t, err)
}

func TestOpenLog_CreatesTimestampedFileUnderLogdir(t *testing.T) {
	dir := t.TempDir()
	logger, closeLog, err := openLog(dir, false)
	require.NoError(t, err)
	defer closeLog()

	logger.Println("hello")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "nabu-")

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestOpenLog_DebugPrefixesMessages(t *testing.T) {
	dir := t.TempDir()
	logger, closeLog, err := openLog(dir, true)
	require.NoError(t, err)
	defer closeLog()

	logger.Println("diag")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "DEBUG")
}
