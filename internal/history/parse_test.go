package history

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestParseFileSkipsMalformedBlocks(t *testing.T) {
	t.Parallel()

	// middle block has a game number but nothing else parseable
	raw := sample888Hand + "\n#Game No : 999\ngarbage line\n\n" + sample888Fold

	result, err := ParseFile("888_test.txt", raw, dialect888{}, 0, discardLogger())
	require.NoError(t, err)
	assert.Len(t, result.Hands, 2)
	assert.Equal(t, 1, result.Warnings)
	assert.Equal(t, "1361371073", result.Hands[0].ID)
	assert.Equal(t, "1361372999", result.Hands[1].ID)
}

func TestParseFileDialectMismatch(t *testing.T) {
	t.Parallel()

	// PokerStars content under an 888 dialect yields no blocks at all
	_, err := ParseFile("888_test.txt", sampleStarsHand, dialect888{}, 0, discardLogger())
	var mismatch *DialectMismatchError
	require.Error(t, err)
	assert.True(t, errors.As(err, &mismatch))
}

func TestParseFileAllBlocksBroken(t *testing.T) {
	t.Parallel()

	raw := "#Game No : 1\nnothing useful\n\n#Game No : 2\nstill nothing\n"
	_, err := ParseFile("888_test.txt", raw, dialect888{}, 0, discardLogger())
	var mismatch *DialectMismatchError
	require.Error(t, err)
	assert.True(t, errors.As(err, &mismatch))
}

func TestParseFileSetsFileIndex(t *testing.T) {
	t.Parallel()

	result, err := ParseFile("888_test.txt", sample888Hand, dialect888{}, 3, discardLogger())
	require.NoError(t, err)
	require.Len(t, result.Hands, 1)
	assert.Equal(t, 3, result.Hands[0].FileIndex)
}
