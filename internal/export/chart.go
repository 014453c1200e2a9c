package export

import (
	"context"
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/vovakirdan/wildfire/internal/fire"
	"github.com/vovakirdan/wildfire/internal/registry"
)

func init() {
	registry.Register("chart", func() registry.Exporter { return Chart{} })
}

// Chart plots the per-step census (trees, burning, empty) as a PNG line chart.
type Chart struct{}

func (Chart) ID() string    { return "chart" }
func (Chart) Title() string { return "Census over time line chart (census.png)" }

// Export implements registry.Exporter.
func (Chart) Export(_ context.Context, tr *fire.Trace, dir string, _ registry.Options) ([]string, error) {
	if tr.Len() < 2 {
		return nil, fmt.Errorf("export: chart: need at least two snapshots, have %d", tr.Len())
	}
	if err := ensureDir(dir); err != nil {
		return nil, err
	}

	s := tr.Series()
	graph := chart.Chart{
		Title:  "Wildfire census",
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name:  "step",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "cells",
			Style: chart.Style{FontSize: 10.0},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Tree",
				XValues: s.Step,
				YValues: s.Tree,
				Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 3.0},
			},
			chart.ContinuousSeries{
				Name:    "Burning",
				XValues: s.Step,
				YValues: s.Burning,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 255, G: 69, B: 0, A: 255}, StrokeWidth: 3.0},
			},
			chart.ContinuousSeries{
				Name:    "Empty",
				XValues: s.Step,
				YValues: s.Empty,
				Style:   chart.Style{StrokeColor: chart.ColorBlack, StrokeWidth: 2.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	path := join(dir, "census.png")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("export: chart: %w", err)
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		return nil, fmt.Errorf("export: chart: render: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("export: chart: %w", err)
	}
	return []string{path}, nil
}
