package dashboard

import (
	"testing"

	"github.com/mwiater/revlens/internal/analytics"
)

func fptr(v float64) *float64 { return &v }

func snapshotFixture() *Snapshot {
	rows := []analytics.RevenueRow{
		{Region: "AMER", Team: "Enterprise", Year: 2025, Quarter: "Q1", ClosedWonRevenue: 500, ClosedWonDeals: 5, DistinctReps: 5, TargetRevenue: 400},
		{Region: "EMEA", Team: "Mid-Mkt", Year: 2025, Quarter: "Q1", ClosedWonRevenue: 300, ClosedWonDeals: 3, DistinctReps: 3, TargetRevenue: 250},
	}
	s := &Snapshot{RevenueRows: rows}
	s.TeamFilter = analytics.NewFilter(analytics.Teams(rows))
	return s
}

func TestRevenueChartsOrderAndScale(t *testing.T) {
	charts := snapshotFixture().RevenueCharts()

	wantTitles := []string{"Deals per Rep", "Average Deal Size", "Attainment %", "Win Rate %", "Mix-Adjusted Win Rate %"}
	if len(charts) != len(wantTitles) {
		t.Fatalf("expected %d charts, got %d", len(wantTitles), len(charts))
	}
	for i, want := range wantTitles {
		if got := charts[i].DisplayTitle(); got != want {
			t.Fatalf("chart %d = %q, want %q", i, got, want)
		}
	}
	if charts[0].Percentage || !charts[2].Percentage {
		t.Fatalf("percentage flags wrong: %+v", charts)
	}
}

func TestTotalsChartRespectsTeamFilter(t *testing.T) {
	s := snapshotFixture()
	s.TeamFilter.Only("Enterprise")

	totals := s.TotalsChart()
	if totals.Percentage {
		t.Fatal("totals chart renders dollars, not percentages")
	}
	actuals := totals.Data.Series[0].Points[0]
	if actuals == nil || *actuals != 500 {
		t.Fatalf("Enterprise-only actuals = %v, want 500", actuals)
	}

	s.TeamFilter.SelectAll()
	all := s.TotalsChart().Data.Series[0].Points[0]
	if all == nil || *all != 800 {
		t.Fatalf("all-teams actuals = %v, want cross-team 800", all)
	}
}

func TestRevenueChartsRespectTeamFilter(t *testing.T) {
	s := snapshotFixture()
	s.TeamFilter.Only("Enterprise")

	deals := s.RevenueCharts()[0]
	amer := deals.Data.Series[0].Points[0]
	if amer == nil || *amer != 1 {
		t.Fatalf("AMER deals per rep = %v, want 1", amer)
	}
	emea := deals.Data.Series[1].Points[0]
	if emea != nil {
		t.Fatalf("EMEA must be absent under the Enterprise-only filter, got %v", *emea)
	}
}

func TestCohortSnapshotCalendarSeries(t *testing.T) {
	s := &CohortSnapshot{Rows: []analytics.CohortRow{
		{Region: "AMER", Cohort: "Q2 Cohort", TenureQuarter: "First Quarter", TenureNum: 1, AvgAttainment: fptr(0.9)},
	}}
	s.RegionFilter = analytics.NewFilter(analytics.CohortRegions(s.Rows))

	aligned := s.CalendarSeries()
	if len(aligned.Labels) != 1 || aligned.Labels[0] != "2025 Q2" {
		t.Fatalf("calendar labels = %v", aligned.Labels)
	}
}

func TestCohortSnapshotInsightsEmptyWhenNoData(t *testing.T) {
	s := &CohortSnapshot{}
	if got := s.Insights(); got != nil {
		t.Fatalf("expected no insights for an empty snapshot, got %v", got)
	}
}
