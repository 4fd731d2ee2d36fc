package present

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart"
	"github.com/wcharczuk/go-chart/drawing"
)

const (
	chartWidth  = 640
	chartHeight = 360
	barWidth    = 60
	barSpacing  = 40
)

var (
	barColor       = drawing.Color{R: 13, G: 110, B: 253, A: 255}
	predictedColor = drawing.Color{R: 220, G: 53, B: 69, A: 255}
)

// RenderChart writes the report's probability distribution as an SVG bar
// chart keyed by risk-level label. The predicted class is highlighted.
func RenderChart(r Report, w io.Writer) error {
	if len(r.Bars) == 0 {
		return fmt.Errorf("present: no probabilities to chart")
	}

	values := make([]chart.Value, len(r.Bars))
	for i, b := range r.Bars {
		fill := barColor
		if i == r.Class {
			fill = predictedColor
		}
		values[i] = chart.Value{
			Label: b.Label,
			Value: b.Probability,
			Style: chart.Style{
				Show:        true,
				FillColor:   fill,
				StrokeColor: fill,
				StrokeWidth: 1,
			},
		}
	}

	graph := chart.BarChart{
		Title:      "Probability Distribution",
		TitleStyle: chart.StyleShow(),
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		XAxis:      chart.StyleShow(),
		YAxis: chart.YAxis{
			Style: chart.StyleShow(),
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f%%", f*100)
				}
				return ""
			},
		},
		Bars: values,
	}

	if err := graph.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("present: render chart: %w", err)
	}
	return nil
}
