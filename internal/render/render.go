// internal/render/render.go

// Package render turns aggregated chart data into a standalone HTML report.
package render

import (
	"github.com/mwiater/revlens/internal/analytics"
)

// Region line colors, fixed so every chart in the report reads the same.
var regionColors = map[string]string{
	"AMER": "rgb(59,130,246)",
	"EMEA": "rgb(16,185,129)",
	"APAC": "rgb(245,158,11)",
}

// cohortPalette colors cohort lines in rotation.
var cohortPalette = []string{
	"rgb(99,102,241)",
	"rgb(236,72,153)",
	"rgb(20,184,166)",
	"rgb(249,115,22)",
	"rgb(139,92,246)",
	"rgb(234,179,8)",
}

const (
	actualsColor = "rgb(59,130,246)"
	targetsColor = "rgb(148,163,184)"
)

// Dataset is one rendered line.
type Dataset struct {
	Label  string
	Points []*float64
	Color  string
	Dashed bool

	// SpanGaps draws the line through nil points instead of breaking it.
	// Absent periods still carry no point of their own.
	SpanGaps bool
}

// LineChart is one chart ready for the HTML renderer.
type LineChart struct {
	Title      string
	YAxisLabel string
	Percentage bool
	Labels     []string
	Datasets   []Dataset
}

// RegionChart adapts a per-region metric dataset to a render chart.
func RegionChart(metric analytics.Metric, data analytics.ChartData) LineChart {
	chart := LineChart{
		Title:      metric.String(),
		YAxisLabel: metric.AxisLabel(),
		Percentage: metric.Percentage(),
		Labels:     data.Labels,
	}
	for _, s := range data.Series {
		chart.Datasets = append(chart.Datasets, Dataset{
			Label:    s.Name,
			Points:   s.Points,
			Color:    regionColors[s.Name],
			SpanGaps: true,
		})
	}
	return chart
}

// TotalsChart adapts the actuals-vs-targets dataset. Targets render dashed
// so projected numbers read differently from closed revenue.
func TotalsChart(title string, data analytics.ChartData) LineChart {
	chart := LineChart{
		Title:      title,
		YAxisLabel: "Revenue ($)",
		Labels:     data.Labels,
	}
	for i, s := range data.Series {
		ds := Dataset{Label: s.Name, Points: s.Points, Color: actualsColor, SpanGaps: true}
		if i > 0 {
			ds.Color = targetsColor
			ds.Dashed = true
		}
		chart.Datasets = append(chart.Datasets, ds)
	}
	return chart
}

// CohortChart adapts the hiring cohort dataset. Cohort lines span gaps:
// a cohort without data for a middle tenure quarter still reads as one
// continuous ramp.
func CohortChart(data analytics.ChartData) LineChart {
	chart := LineChart{
		Title:      "Attainment by Hiring Cohort",
		YAxisLabel: "Attainment (%)",
		Percentage: true,
		Labels:     data.Labels,
	}
	for i, s := range data.Series {
		chart.Datasets = append(chart.Datasets, Dataset{
			Label:    s.Name,
			Points:   s.Points,
			Color:    cohortPalette[i%len(cohortPalette)],
			SpanGaps: true,
		})
	}
	return chart
}
