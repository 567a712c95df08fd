package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/bankroll/internal/config"
	"github.com/lox/bankroll/internal/history"
)

// runFlags is the configuration surface shared by every subcommand.
// Flags override values from the HCL config file.
type runFlags struct {
	Config string   `help:"Path to HCL config file" default:"bankroll.hcl"`
	Hero   string   `help:"Account name to track" short:"H"`
	Dir    string   `help:"Directory containing hand history exports"`
	Debug  bool     `help:"Enable debug logging"`
	Files  []string `arg:"" optional:"" help:"Hand history files to process, in tie-break order"`
}

func (f *runFlags) setupLogger() *log.Logger {
	level := log.InfoLevel
	if f.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}

// resolveConfig loads the HCL file and applies flag overrides.
func (f *runFlags) resolveConfig() (*config.Config, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, err
	}
	if f.Hero != "" {
		cfg.Hero = f.Hero
	}
	if f.Dir != "" {
		cfg.InputDir = f.Dir
	}
	if len(f.Files) > 0 {
		cfg.Files = f.Files
	}
	if cfg.Hero == "" {
		return nil, errors.New("no hero configured: pass --hero or set hero in the config file")
	}
	if len(cfg.Files) == 0 {
		return nil, errors.New("no input files: pass file names or set files in the config file")
	}
	return cfg, nil
}

// loadHands runs detection and parsing over every configured file.
// Unknown-dialect and mismatched files are skipped with an error log;
// the run fails only when no file yields any hands.
func loadHands(cfg *config.Config, logger *log.Logger) ([]history.Hand, error) {
	results := history.LoadFiles(cfg.InputDir, cfg.Files, logger)

	var hands []history.Hand
	var firstErr error
	for _, r := range results {
		if r.Err != nil {
			logger.Error("skipping file", "file", r.Name, "error", r.Err)
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		if r.Warnings > 0 {
			logger.Warn("parsed with warnings", "file", r.Name,
				"hands", len(r.Hands), "skipped_blocks", r.Warnings)
		} else {
			logger.Debug("parsed", "file", r.Name, "hands", len(r.Hands))
		}
		hands = append(hands, r.Hands...)
	}

	if len(hands) == 0 {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, fmt.Errorf("no hands parsed from %d files", len(cfg.Files))
	}
	return hands, nil
}
