package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/bankroll/internal/fileutil"
	"github.com/lox/bankroll/internal/phh"
)

// ExportCmd writes every parsed hand as one sectioned PHH file, in
// file order, for use with other hand-history tooling.
type ExportCmd struct {
	runFlags
	Out string `help:"Output PHH session path" default:"session.phhs"`
}

func (cmd *ExportCmd) Run() error {
	logger := cmd.setupLogger()

	cfg, err := cmd.resolveConfig()
	if err != nil {
		return err
	}

	hands, err := loadHands(cfg, logger)
	if err != nil {
		return err
	}

	converted := make([]*phh.HandHistory, 0, len(hands))
	for i := range hands {
		converted = append(converted, phh.FromHand(&hands[i]))
	}

	var buf strings.Builder
	if err := phh.EncodeSession(&buf, converted); err != nil {
		return err
	}

	if dir := filepath.Dir(cmd.Out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := fileutil.WriteFileAtomic(cmd.Out, []byte(buf.String()), 0644); err != nil {
		return err
	}

	logger.Info("exported", "path", cmd.Out, "hands", len(converted))
	return nil
}
