package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// renderLatencyChart draws the sequential-load latency of every
// structure/config pair as a bar chart.
func renderLatencyChart(results []BenchResult, path string) error {
	var vals plotter.Values
	var labels []string
	for _, res := range results {
		if res.Operation != "Load_Sequential" {
			continue
		}
		vals = append(vals, float64(res.LatencyNs))
		labels = append(labels, res.Name+"/"+res.Config)
	}
	if len(vals) == 0 {
		return fmt.Errorf("chart: no load results to plot")
	}

	p := plot.New()
	p.Title.Text = "Sequential load latency"
	p.Y.Label.Text = "ns/op"

	bars, err := plotter.NewBarChart(vals, vg.Points(18))
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("chart: save: %w", err)
	}
	return nil
}
