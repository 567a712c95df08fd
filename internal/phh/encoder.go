package phh

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Encode writes one hand in PHH TOML form.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeSession writes a sequence of hands as a sectioned PHH file,
// one [N] table per hand.
func EncodeSession(w io.Writer, hands []*HandHistory) error {
	for i, hand := range hands {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[%d]\n", i+1); err != nil {
			return err
		}
		var buf strings.Builder
		if err := Encode(&buf, hand); err != nil {
			return fmt.Errorf("phh: encode hand %d: %w", i+1, err)
		}
		if _, err := io.WriteString(w, strings.TrimRight(buf.String(), "\n")+"\n"); err != nil {
			return err
		}
	}
	return nil
}
