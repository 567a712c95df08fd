package history

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// FileResult is the outcome for one input file. Err is set when the
// whole file was skipped (unknown dialect, content mismatch, or a read
// failure); callers decide whether enough files survived.
type FileResult struct {
	Name     string
	Hands    []Hand
	Warnings int
	Err      error
}

// LoadFiles reads and parses the named files from dir. Files parse in
// parallel since each file is independent; results are merged by input
// position, never by completion order, so the output is deterministic.
func LoadFiles(dir string, names []string, logger *log.Logger) []FileResult {
	results := make([]FileResult, len(names))

	var g errgroup.Group
	for i, name := range names {
		results[i].Name = name
		g.Go(func() error {
			results[i] = loadFile(dir, name, i, logger)
			return nil
		})
	}
	// workers only record per-file errors, the group never fails
	_ = g.Wait()

	return results
}

func loadFile(dir, name string, fileIndex int, logger *log.Logger) FileResult {
	result := FileResult{Name: name}

	dialect, err := DetectDialect(name)
	if err != nil {
		result.Err = err
		return result
	}

	raw, err := os.ReadFile(filepath.Join(dir, filepath.Clean(name)))
	if err != nil {
		result.Err = err
		return result
	}

	parsed, err := ParseFile(name, string(raw), dialect, fileIndex, logger)
	if err != nil {
		result.Err = err
		return result
	}

	result.Hands = parsed.Hands
	result.Warnings = parsed.Warnings
	return result
}
