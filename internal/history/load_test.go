package history

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "888_session_1.txt", sample888Hand)
	writeFixture(t, dir, "pokerstars_session_1.txt", sampleStarsHand)

	results := LoadFiles(dir, []string{"888_session_1.txt", "pokerstars_session_1.txt"}, discardLogger())
	require.Len(t, results, 2)

	require.NoError(t, results[0].Err)
	require.NoError(t, results[1].Err)
	assert.Len(t, results[0].Hands, 1)
	assert.Len(t, results[1].Hands, 1)

	// merge order follows input order, and FileIndex records it
	assert.Equal(t, 0, results[0].Hands[0].FileIndex)
	assert.Equal(t, 1, results[1].Hands[0].FileIndex)
}

func TestLoadFilesSkipsUnknownDialect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "888_session_1.txt", sample888Hand)
	writeFixture(t, dir, "partypoker_session.txt", "whatever")

	results := LoadFiles(dir, []string{"partypoker_session.txt", "888_session_1.txt"}, discardLogger())
	require.Len(t, results, 2)

	var unknownErr *UnknownDialectError
	require.Error(t, results[0].Err)
	assert.True(t, errors.As(results[0].Err, &unknownErr))

	// the valid file still parses
	require.NoError(t, results[1].Err)
	assert.Len(t, results[1].Hands, 1)
}

func TestLoadFilesMissingFile(t *testing.T) {
	t.Parallel()

	results := LoadFiles(t.TempDir(), []string{"888_absent.txt"}, discardLogger())
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}
