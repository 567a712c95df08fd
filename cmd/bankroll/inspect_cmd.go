package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/bankroll/internal/history"
	"github.com/lox/bankroll/internal/session"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	totalStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// InspectCmd prints the per-hand breakdown behind the chart: one row
// per hero hand in chronological order with the running total.
type InspectCmd struct {
	runFlags
}

func (cmd *InspectCmd) Run() error {
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

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-20s %-12s %-14s %10s %12s",
		"TIME (UTC)", "TABLE", "HAND", "NET", "TOTAL")))
	for _, p := range series {
		net := history.FormatCents(p.Net)
		if p.Net >= 0 {
			net = winStyle.Render(net)
		} else {
			net = lossStyle.Render(net)
		}
		fmt.Printf("%-20s %-12s %-14s %10s %12s\n",
			p.Timestamp.Format("2006-01-02 15:04:05"),
			p.Table, p.HandID, net, history.FormatCents(p.Cumulative))
	}
	fmt.Println(totalStyle.Render(fmt.Sprintf("%d hands, net %s",
		len(series), history.FormatCents(series.Total()))))
	return nil
}
