// Package chart renders the session series as a PNG bankroll graph.
package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/lox/bankroll/internal/fileutil"
	"github.com/lox/bankroll/internal/session"
)

// Render draws the cumulative-winnings series and returns PNG bytes.
// The x-axis is the hand timestamp, the y-axis dollars; a zero line
// marks break-even.
func Render(series session.Series, hero string) ([]byte, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("empty series")
	}

	points := series
	if len(points) == 1 {
		// the renderer needs two distinct points; anchor a single-hand
		// series at break-even one minute before the hand
		anchor := session.Point{Timestamp: points[0].Timestamp.Add(-time.Minute)}
		points = append(session.Series{anchor}, points...)
	}

	xs := make([]time.Time, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Timestamp
		ys[i] = float64(p.Cumulative) / 100
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Session results for %s", hero),
		Width:  1200,
		Height: 600,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02 15:04"),
		},
		YAxis: chart.YAxis{
			Name: "Winnings ($)",
			GridLines: []chart.GridLine{
				{Value: 0, Style: chart.Style{StrokeColor: drawing.ColorBlack, StrokeWidth: 1}},
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "cumulative",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePNG renders the series and writes it atomically to path.
func WritePNG(path string, series session.Series, hero string) error {
	png, err := Render(series, hero)
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, png, 0644)
}
