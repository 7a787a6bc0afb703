// internal/dashboard/snapshot.go

// Package dashboard orchestrates the data lifecycle behind the revenue
// dashboard: request warehouse scopes, run the fixed queries, validate and
// decode the results, and hand the UI a snapshot it can re-aggregate under
// any filter without another round trip.
package dashboard

import (
	"github.com/mwiater/revlens/internal/analytics"
)

// Snapshot is the decoded result of one revenue refresh. Aggregation is
// deferred: the snapshot holds typed rows, and the UI derives buckets and
// series from them each time the team filter changes.
type Snapshot struct {
	RevenueRows []analytics.RevenueRow
	MixRows     []analytics.MixRow

	// TeamFilter is seeded from the snapshot's own rows and mutated by the
	// UI between refreshes.
	TeamFilter *analytics.Filter
}

// Empty reports whether the refresh returned no revenue data at all. The
// UI renders this as the empty state rather than an error.
func (s *Snapshot) Empty() bool {
	return s == nil || len(s.RevenueRows) == 0
}

// RevenueCharts builds the four revenue chart datasets under the current
// team filter. Chronology and gap alignment come from the aggregation, so
// the charts stay index-aligned with their labels.
func (s *Snapshot) RevenueCharts() []Chart {
	regions := analytics.CanonicalRegions
	buckets := analytics.AggregateQuarters(s.RevenueRows, s.TeamFilter, false)
	targeted := analytics.AggregateQuarters(s.RevenueRows, s.TeamFilter, true)
	mixBuckets := analytics.AggregateMix(s.MixRows)

	charts := make([]Chart, 0, 5)
	for _, m := range []analytics.Metric{analytics.DealsPerRep, analytics.AvgDealSize, analytics.AttainmentPct, analytics.WinRatePct, analytics.MixAdjustedWinRatePct} {
		c := Chart{Metric: m, Percentage: m.Percentage()}
		switch m {
		case analytics.AttainmentPct:
			c.Data = analytics.BuildSeries(targeted, m, regions)
		case analytics.MixAdjustedWinRatePct:
			c.Data = analytics.BuildMixSeries(mixBuckets, regions)
		default:
			c.Data = analytics.BuildSeries(buckets, m, regions)
		}
		charts = append(charts, c)
	}
	return charts
}

// TotalsChart builds the combined actuals-vs-targets dataset under the
// current team filter, from the same target-bearing rows the attainment
// chart aggregates.
func (s *Snapshot) TotalsChart() Chart {
	buckets := analytics.AggregateQuarters(s.RevenueRows, s.TeamFilter, true)
	return Chart{Title: "Actuals vs Targets (LTR)", Data: analytics.BuildTotalsSeries(buckets)}
}

// Chart pairs a metric with its render-ready data.
type Chart struct {
	Metric     analytics.Metric
	Title      string
	Percentage bool
	Data       analytics.ChartData
}

// DisplayTitle returns the chart heading.
func (c Chart) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Metric.String()
}

// CohortSnapshot is the decoded result of one hiring cohort load.
type CohortSnapshot struct {
	Rows []analytics.CohortRow

	// RegionFilter is seeded from the snapshot's rows and mutated by the
	// UI between refreshes.
	RegionFilter *analytics.Filter
}

// Empty reports whether the cohort load returned no data.
func (s *CohortSnapshot) Empty() bool {
	return s == nil || len(s.Rows) == 0
}

// Series aggregates the cohort rows under the current region filter.
func (s *CohortSnapshot) Series() analytics.CohortSeries {
	return analytics.AggregateCohorts(s.Rows, s.RegionFilter)
}

// cohortStartYear anchors the calendar axis; the scorecard query tracks
// reps hired in this year.
const cohortStartYear = 2025

// CalendarSeries re-plots the aggregated tracks onto calendar quarters.
func (s *CohortSnapshot) CalendarSeries() analytics.CohortSeries {
	return analytics.AlignCohortsByCalendar(s.Series(), cohortStartYear)
}

// Insights summarizes the filtered cohort series. The summary is advisory:
// if it panics on an unexpected shape the charts must still render, so the
// panel just comes back empty.
func (s *CohortSnapshot) Insights() (insights []analytics.Insight) {
	defer func() {
		if r := recover(); r != nil {
			insights = nil
		}
	}()
	return analytics.Summarize(s.Series())
}
