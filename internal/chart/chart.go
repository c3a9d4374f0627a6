// Package chart draws the daily composite score as a PNG line chart.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"wellbeing-tracker/internal/utils"
	"wellbeing-tracker/internal/wellbeing"
)

var ErrNoScores = errors.New("no scores to plot")

const (
	width  = 8 * vg.Inch
	height = 4 * vg.Inch
)

// Render returns the composite series as PNG bytes.
func Render(scores []wellbeing.CompositeScore) ([]byte, error) {
	if len(scores) == 0 {
		return nil, ErrNoScores
	}

	p := plot.New()
	p.Title.Text = "Daily Well-Being (Normalized Composite)"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Normalized Composite Score"
	p.Y.Min, p.Y.Max = 0, 1
	p.X.Tick.Marker = plot.TimeTicks{Format: utils.DateLayout}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(scores))
	for i, s := range scores {
		pts[i].X = float64(s.Date.Unix())
		pts[i].Y = s.Normalized
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("build series: %w", err)
	}
	p.Add(line, points)

	if len(scores) == 1 {
		// Give a single day some horizontal room.
		x := pts[0].X
		p.X.Min, p.X.Max = x-float64(12*time.Hour/time.Second), x+float64(12*time.Hour/time.Second)
	}

	w, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	return buf.Bytes(), nil
}
