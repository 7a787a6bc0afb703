// internal/render/echarts.go
package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mwiater/revlens/internal/analytics"
)

// Report is the full set of charts and insights for one HTML export.
type Report struct {
	Title    string
	Subtitle string
	Charts   []LineChart
	Insights []analytics.Insight
}

// WriteHTML renders the report as a single self-contained page.
func WriteHTML(report Report, w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = report.Title
	page.SetLayout(components.PageFlexLayout)

	for _, chart := range report.Charts {
		page.AddCharts(buildLine(chart, report.Subtitle))
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("render report page: %w", err)
	}

	// Splice the insight summary in before the closing body tag so the
	// exported document stays well formed.
	html := buf.String()
	if block := insightsBlock(report.Insights); block != "" {
		if idx := strings.LastIndex(html, "</body>"); idx >= 0 {
			html = html[:idx] + block + html[idx:]
		} else {
			html += block
		}
	}
	_, err := io.WriteString(w, html)
	return err
}

// WriteHTMLFile renders the report to path, creating parent directories.
func WriteHTMLFile(report Report, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()
	return WriteHTML(report, f)
}

func buildLine(chart LineChart, subtitle string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "620px", Height: "380px"}),
		charts.WithTitleOpts(opts.Title{Title: chart.Title, Subtitle: subtitle}),
		charts.WithYAxisOpts(opts.YAxis{Name: chart.YAxisLabel}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
	)

	line.SetXAxis(chart.Labels)
	for _, ds := range chart.Datasets {
		seriesOpts := []charts.SeriesOpts{
			charts.WithLineChartOpts(opts.LineChart{ConnectNulls: opts.Bool(ds.SpanGaps)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: ds.Color}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: ds.Color, Type: lineType(ds)}),
		}
		line.AddSeries(ds.Label, lineData(ds.Points), seriesOpts...)
	}
	return line
}

func lineType(ds Dataset) string {
	if ds.Dashed {
		return "dashed"
	}
	return "solid"
}

// lineData maps points to series values, keeping nil as nil so absent
// quarters break the line instead of dipping to zero.
func lineData(points []*float64) []opts.LineData {
	data := make([]opts.LineData, len(points))
	for i, p := range points {
		if p == nil {
			data[i] = opts.LineData{Value: nil}
			continue
		}
		data[i] = opts.LineData{Value: *p}
	}
	return data
}

// insightsBlock renders the insight summary markup. Tones map to border
// colors only; the text carries the content.
func insightsBlock(insights []analytics.Insight) string {
	if len(insights) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(`<div style="max-width:900px;margin:24px auto;font-family:sans-serif;">` + "\n<h3>Insights</h3>\n")
	for _, in := range insights {
		color := "#94a3b8"
		switch in.Tone {
		case analytics.TonePositive:
			color = "#10b981"
		case analytics.ToneNegative:
			color = "#ef4444"
		}
		fmt.Fprintf(&sb, `<p style="border-left:4px solid %s;padding-left:12px;">%s</p>`+"\n", color, in.Text)
	}
	sb.WriteString("</div>\n")
	return sb.String()
}
