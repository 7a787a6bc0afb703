// internal/tui/views.go
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/revlens/internal/analytics"
	"github.com/mwiater/revlens/internal/dashboard"
	"github.com/mwiater/revlens/internal/util"
)

const absentCell = "—"

var (
	headerStyle    = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1).Bold(true)
	tabStyle       = lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("244")).Padding(0, 1)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
	positiveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	negativeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	cursorStyle    = lipgloss.NewStyle().Bold(true)
)

// View renders the application's UI based on the current state of the model.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.state {
	case viewAuthorizing:
		if m.err != nil {
			return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
		}
		timer := fmt.Sprintf("%.1f", time.Since(m.requestStartTime).Seconds())
		return fmt.Sprintf("\n  %s Requesting warehouse access... %ss\n", m.spinner.View(), timer)

	case viewDenied:
		return errorStyle.Render("Access denied: this session does not hold the required warehouse read scopes.")

	case viewLoading:
		timer := fmt.Sprintf("%.1f", time.Since(m.requestStartTime).Seconds())
		return fmt.Sprintf("\n  %s Loading revenue data... %ss\n", m.spinner.View(), timer)

	case viewDashboard:
		return m.dashboardView()

	default:
		return "Unknown state"
	}
}

// dashboardView renders the header, the visible tab, and the footer.
func (m *model) dashboardView() string {
	var builder strings.Builder

	builder.WriteString(m.headerView() + "\n\n")

	var body string
	switch {
	case m.isLoading:
		timer := fmt.Sprintf("%.1f", time.Since(m.requestStartTime).Seconds())
		body = fmt.Sprintf("  %s Loading... %ss", m.spinner.View(), timer)
	case m.tab == tabHiring:
		body = m.hiringView()
	default:
		body = m.revenueView()
	}
	m.viewport.SetContent(body)
	builder.WriteString(m.viewport.View())

	builder.WriteString("\n" + m.footerView())
	return builder.String()
}

func (m *model) headerView() string {
	revenueTab := tabStyle.Render("Revenue")
	hiringTab := tabStyle.Render("Hiring Cohorts")
	if m.tab == tabRevenue {
		revenueTab = activeTabStyle.Render("Revenue")
	} else {
		hiringTab = activeTabStyle.Render("Hiring Cohorts")
	}

	filterSummary := "No data"
	if m.tab == tabRevenue && !m.snapshot.Empty() {
		filterSummary = m.snapshot.TeamFilter.SummaryLabel("Teams")
	}
	if m.tab == tabHiring && !m.cohorts.Empty() {
		filterSummary = m.cohorts.RegionFilter.SummaryLabel("Regions")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render("revlens"),
		tabStyle.MarginLeft(1).Render(""),
		revenueTab,
		hiringTab,
		dimStyle.MarginLeft(2).Render(filterSummary),
	)
}

func (m *model) footerView() string {
	help := " tab switch · space toggle · o only · d deselect · a all · c clear · r refresh · e export · q quit"
	footer := dimStyle.Render(util.TruncateToWidth(help, m.width))
	if m.exportNote != "" {
		footer += "\n" + positiveStyle.Render(" "+m.exportNote)
	}
	if m.err != nil {
		footer += "\n" + negativeStyle.Render(fmt.Sprintf(" Error: %v", m.err))
	}
	return footer
}

// revenueView renders the team filter panel and the metric tables.
func (m *model) revenueView() string {
	if m.snapshot.Empty() {
		return dimStyle.Render("  No revenue data for the selected range.")
	}

	var builder strings.Builder
	builder.WriteString(m.filterPanel(m.snapshot.TeamFilter) + "\n")

	for _, chart := range m.snapshot.RevenueCharts() {
		builder.WriteString(metricTable(chart) + "\n")
	}
	builder.WriteString(metricTable(m.snapshot.TotalsChart()))
	return builder.String()
}

// hiringView renders the region filter panel, the cohort table, and the
// insight summary.
func (m *model) hiringView() string {
	if m.cohorts.Empty() {
		return dimStyle.Render("  No hiring cohort data for the selected range.")
	}

	var builder strings.Builder
	builder.WriteString(m.filterPanel(m.cohorts.RegionFilter) + "\n")

	series := m.cohorts.Series()
	axisNote := "tenure quarters"
	if m.calendarAxis {
		series = m.cohorts.CalendarSeries()
		axisNote = "calendar quarters"
	}
	builder.WriteString(cohortTable(series) + dimStyle.Render("  (x-axis: "+axisNote+", press x to switch)") + "\n\n")
	builder.WriteString(insightPanel(m.cohorts.Insights(), m.width-6))
	return builder.String()
}

// filterPanel renders the multi-select filter with the cursor row bolded.
func (m *model) filterPanel(filter *analytics.Filter) string {
	var builder strings.Builder
	builder.WriteString(titleStyle.Render("Filter") + "\n")
	for i, name := range filter.Universe() {
		display := util.TruncateRunes(name, 24)
		marker := "[ ]"
		line := fmt.Sprintf("  %s %s", marker, display)
		if filter.IsSelected(name) {
			line = selectedStyle.Render(fmt.Sprintf("  [x] %s", display))
		}
		if i == m.filterCursor {
			line = cursorStyle.Render("> ") + strings.TrimPrefix(line, "  ")
		}
		builder.WriteString(line + "\n")
	}
	return builder.String()
}

// metricTable renders one chart dataset as a quarter-by-region table.
// Absent values print as a dash so a gap never reads as zero.
func metricTable(chart dashboard.Chart) string {
	var builder strings.Builder
	builder.WriteString(titleStyle.Render(chart.DisplayTitle()) + "\n")

	builder.WriteString(fmt.Sprintf("  %-10s", "Quarter"))
	for _, s := range chart.Data.Series {
		builder.WriteString(fmt.Sprintf("%14s", s.Name))
	}
	builder.WriteString("\n")

	for i, label := range chart.Data.Labels {
		builder.WriteString(fmt.Sprintf("  %-10s", label))
		for _, s := range chart.Data.Series {
			builder.WriteString(fmt.Sprintf("%14s", formatCell(s.Points[i], chart.Percentage)))
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

// cohortTable renders the cohort attainment tracks across tenure quarters.
func cohortTable(series analytics.CohortSeries) string {
	var builder strings.Builder
	builder.WriteString(titleStyle.Render("Attainment by Hiring Cohort") + "\n")

	builder.WriteString(fmt.Sprintf("  %-14s", "Cohort"))
	for _, label := range series.Labels {
		builder.WriteString(fmt.Sprintf("%18s", label))
	}
	builder.WriteString("\n")

	for _, track := range series.Cohorts {
		builder.WriteString(fmt.Sprintf("  %-14s", util.TruncateRunes(track.Name, 13)))
		for _, p := range track.Points {
			builder.WriteString(fmt.Sprintf("%18s", formatCell(p, true)))
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

// insightPanel renders the summarizer output with tone coloring, wrapped
// to the visible width.
func insightPanel(insights []analytics.Insight, width int) string {
	if len(insights) == 0 {
		return ""
	}
	var builder strings.Builder
	builder.WriteString(titleStyle.Render("Insights") + "\n")
	for _, in := range insights {
		style := dimStyle
		switch in.Tone {
		case analytics.TonePositive:
			style = positiveStyle
		case analytics.ToneNegative:
			style = negativeStyle
		}
		builder.WriteString("  • " + style.Render(util.WrapToWidth(in.Text, width)) + "\n")
	}
	return builder.String()
}

func formatCell(p *float64, percentage bool) string {
	if p == nil {
		return absentCell
	}
	if percentage {
		return fmt.Sprintf("%.1f%%", *p)
	}
	return fmt.Sprintf("%.1f", *p)
}
