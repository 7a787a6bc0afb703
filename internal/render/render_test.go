package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mwiater/revlens/internal/analytics"
)

func fptr(v float64) *float64 { return &v }

func TestRegionChartColorsAndScale(t *testing.T) {
	data := analytics.ChartData{
		Labels: []string{"2025 Q1"},
		Series: []analytics.Series{
			{Name: "AMER", Points: []*float64{fptr(25)}},
			{Name: "EMEA", Points: []*float64{nil}},
		},
	}
	chart := RegionChart(analytics.WinRatePct, data)

	if chart.Title != "Win Rate %" || !chart.Percentage {
		t.Fatalf("chart header = %q percentage=%v", chart.Title, chart.Percentage)
	}
	if chart.Datasets[0].Color != regionColors["AMER"] {
		t.Fatalf("AMER color = %q", chart.Datasets[0].Color)
	}
	if !chart.Datasets[0].SpanGaps || !chart.Datasets[1].SpanGaps {
		t.Fatal("revenue lines must draw through absent periods")
	}
}

func TestTotalsChartDashesTargets(t *testing.T) {
	data := analytics.ChartData{
		Labels: []string{"2025 Q1"},
		Series: []analytics.Series{
			{Name: "Actuals (LTR)", Points: []*float64{fptr(500)}},
			{Name: "Targets (LTR)", Points: []*float64{fptr(400)}},
		},
	}
	chart := TotalsChart("Actuals vs Targets (LTR)", data)

	if chart.Datasets[0].Dashed {
		t.Fatal("actuals must render solid")
	}
	if !chart.Datasets[1].Dashed {
		t.Fatal("targets must render dashed")
	}
	if !chart.Datasets[0].SpanGaps || !chart.Datasets[1].SpanGaps {
		t.Fatal("totals lines must draw through absent periods")
	}
}

func TestCohortChartSpansGaps(t *testing.T) {
	data := analytics.ChartData{
		Labels: []string{"First Quarter", "Second Quarter"},
		Series: []analytics.Series{
			{Name: "Q1 Cohort", Points: []*float64{fptr(80), nil}},
		},
	}
	chart := CohortChart(data)

	if !chart.Datasets[0].SpanGaps {
		t.Fatal("cohort lines must span gaps")
	}
	if chart.Datasets[0].Color == "" {
		t.Fatal("cohort line missing a palette color")
	}
}

func TestWriteHTML(t *testing.T) {
	report := Report{
		Title:    "Revenue Performance",
		Subtitle: "All Teams",
		Charts: []LineChart{
			RegionChart(analytics.DealsPerRep, analytics.ChartData{
				Labels: []string{"2025 Q1", "2025 Q2"},
				Series: []analytics.Series{{Name: "AMER", Points: []*float64{fptr(2), nil}}},
			}),
		},
		Insights: []analytics.Insight{
			{Text: "Average attainment across all cohorts is 92.0%.", Tone: analytics.ToneNeutral},
		},
	}

	var buf bytes.Buffer
	if err := WriteHTML(report, &buf); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	html := buf.String()

	for _, want := range []string{"Deals per Rep", "2025 Q1", "Average attainment across all cohorts"} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered page missing %q", want)
		}
	}
	if idx := strings.Index(html, "Average attainment"); idx > strings.LastIndex(html, "</body>") {
		t.Fatal("insights rendered outside the document body")
	}
}
