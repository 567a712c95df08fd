package history

import (
	"github.com/charmbracelet/log"
)

// ParseResult is the outcome of parsing one file's raw text.
type ParseResult struct {
	Hands    []Hand
	Warnings int // hand blocks skipped because they failed to parse
}

// ParseFile splits raw into hand blocks and parses each one. A block
// that fails to parse is logged and skipped so one malformed hand never
// loses the rest of the file. When the text yields no blocks at all, or
// every block fails, the file as a whole does not match the dialect and
// a *DialectMismatchError is returned.
func ParseFile(fileName, raw string, dialect Dialect, fileIndex int, logger *log.Logger) (*ParseResult, error) {
	blocks := dialect.SplitHands(raw)
	if len(blocks) == 0 {
		return nil, &DialectMismatchError{
			File:    fileName,
			Dialect: dialect.Name(),
			Reason:  "no hand blocks found",
		}
	}

	result := &ParseResult{Hands: make([]Hand, 0, len(blocks))}
	for i, block := range blocks {
		hand, err := dialect.ParseHand(block)
		if err != nil {
			result.Warnings++
			logger.Warn("skipping malformed hand block",
				"file", fileName, "block", i+1, "error", err)
			continue
		}
		hand.FileIndex = fileIndex
		result.Hands = append(result.Hands, *hand)
	}

	if len(result.Hands) == 0 {
		return nil, &DialectMismatchError{
			File:    fileName,
			Dialect: dialect.Name(),
			Reason:  "no hand block matched the grammar",
		}
	}
	return result, nil
}
