package history

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Dialect is one site's text format: how a raw export splits into hand
// blocks and how a single block parses into a Hand. Adding a site means
// adding a Dialect implementation and a row in the detection table;
// callers never switch on the site themselves.
type Dialect interface {
	Name() string
	SplitHands(raw string) []string
	ParseHand(block string) (*Hand, error)
}

// UnknownDialectError indicates a file name that matches no known site
// naming convention. The file is skipped; the run continues if other
// files succeed.
type UnknownDialectError struct {
	File string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("%s: file name matches no known site dialect", e.File)
}

// DialectMismatchError indicates file content that does not follow the
// grammar implied by the detected dialect (e.g. a PokerStars export
// renamed with an 888 prefix). Same recovery as UnknownDialectError.
type DialectMismatchError struct {
	File    string
	Dialect string
	Reason  string
}

func (e *DialectMismatchError) Error() string {
	return fmt.Sprintf("%s: content does not match %s format: %s", e.File, e.Dialect, e.Reason)
}

// dialects is the closed set of supported sites, keyed by the file-name
// prefix the site's export tool uses (everything before the first '_').
var dialects = map[string]Dialect{
	"888":        dialect888{},
	"pokerstars": dialectStars{},
}

// DetectDialect infers the site dialect from the export's file name.
func DetectDialect(fileName string) (Dialect, error) {
	base := filepath.Base(fileName)
	prefix, _, ok := strings.Cut(base, "_")
	if ok {
		if d, found := dialects[strings.ToLower(prefix)]; found {
			return d, nil
		}
	}
	return nil, &UnknownDialectError{File: fileName}
}
