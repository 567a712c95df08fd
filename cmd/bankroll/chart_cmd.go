package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lox/bankroll/internal/chart"
	"github.com/lox/bankroll/internal/history"
	"github.com/lox/bankroll/internal/session"
)

// ChartCmd parses the configured exports, aggregates the hero's
// results chronologically and writes the bankroll PNG.
type ChartCmd struct {
	runFlags
	Out string `help:"Output PNG path (default: <output_dir>/<date>_session_results.png)"`
}

func (cmd *ChartCmd) Run() error {
	logger := cmd.setupLogger()

	cfg, err := cmd.resolveConfig()
	if err != nil {
		return err
	}

	hands, err := loadHands(cfg, logger)
	if err != nil {
		return err
	}

	series, err := session.Aggregate(hands, cfg.Hero)
	if err != nil {
		return err
	}

	out := cmd.Out
	if out == "" {
		name := fmt.Sprintf("%s_session_results.png", series[0].Timestamp.Format("20060102"))
		out = filepath.Join(cfg.OutputDir, name)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := chart.WritePNG(out, series, cfg.Hero); err != nil {
		return err
	}

	logger.Info("chart written",
		"path", out,
		"hands", len(series),
		"net", history.FormatCents(series.Total()))
	return nil
}
