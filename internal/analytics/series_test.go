package analytics

import (
	"reflect"
	"testing"
)

func TestBuildSeriesAlignsGapsWithLabels(t *testing.T) {
	rows := []RevenueRow{
		{Region: "AMER", Year: 2025, Quarter: "Q1", ClosedWonDeals: 4, DistinctReps: 2},
		{Region: "EMEA", Year: 2025, Quarter: "Q2", ClosedWonDeals: 9, DistinctReps: 3},
	}
	data := BuildSeries(AggregateQuarters(rows, nil, false), DealsPerRep, CanonicalRegions)

	if !reflect.DeepEqual(data.Labels, []string{"2025 Q1", "2025 Q2"}) {
		t.Fatalf("labels = %v", data.Labels)
	}
	if len(data.Series) != len(CanonicalRegions) {
		t.Fatalf("expected %d series, got %d", len(CanonicalRegions), len(data.Series))
	}

	amer := data.Series[0]
	if amer.Points[0] == nil || *amer.Points[0] != 2 || amer.Points[1] != nil {
		t.Fatalf("AMER points = %v, want [2, nil]", amer.Points)
	}
	apac := data.Series[2]
	if apac.Points[0] != nil || apac.Points[1] != nil {
		t.Fatalf("APAC points = %v, want all nil", apac.Points)
	}
}

func TestBuildMixSeriesExcludesCutoffEverywhere(t *testing.T) {
	rows := []MixRow{
		{Region: "AMER", Year: 2025, Quarter: "Q4", TotalClosed: 10, MixAdjustedWinRate: fptr(0.4)},
		{Region: "AMER", Year: 2026, Quarter: "Q1", TotalClosed: 10, MixAdjustedWinRate: fptr(0.9)},
		{Region: "EMEA", Year: 2026, Quarter: "Q1", TotalClosed: 5, MixAdjustedWinRate: fptr(0.7)},
	}
	data := BuildMixSeries(AggregateMix(rows), CanonicalRegions)

	if !reflect.DeepEqual(data.Labels, []string{"2025 Q4"}) {
		t.Fatalf("labels = %v, want the cutoff quarter removed", data.Labels)
	}
	for _, s := range data.Series {
		if len(s.Points) != len(data.Labels) {
			t.Fatalf("series %s has %d points for %d labels", s.Name, len(s.Points), len(data.Labels))
		}
	}
	if got := data.Series[0].Points[0]; got == nil || *got != 0.4 {
		t.Fatalf("surviving point = %v, want 0.4", got)
	}
}

func TestBuildTotalsSeries(t *testing.T) {
	rows := []RevenueRow{
		{Region: "AMER", Year: 2025, Quarter: "Q1", ClosedWonRevenue: 500, TargetRevenue: 400},
		{Region: "EMEA", Year: 2025, Quarter: "Q1", ClosedWonRevenue: 100, TargetRevenue: 100},
	}
	data := BuildTotalsSeries(AggregateQuarters(rows, nil, true))

	if len(data.Series) != 2 {
		t.Fatalf("expected actuals and targets, got %d series", len(data.Series))
	}
	if data.Series[0].Name != "Actuals (LTR)" || data.Series[1].Name != "Targets (LTR)" {
		t.Fatalf("series names = %q, %q", data.Series[0].Name, data.Series[1].Name)
	}
	if got := data.Series[0].Points[0]; got == nil || *got != 600 {
		t.Fatalf("actuals = %v, want 600", got)
	}
	if got := data.Series[1].Points[0]; got == nil || *got != 500 {
		t.Fatalf("targets = %v, want 500", got)
	}
}

func TestBuildCohortChart(t *testing.T) {
	cs := CohortSeries{
		Labels: tenureLabels,
		Cohorts: []CohortTrack{
			{Name: "Q1 Cohort", Points: []*float64{fptr(80), nil, nil, nil}},
		},
	}
	data := BuildCohortChart(cs)

	if !reflect.DeepEqual(data.Labels, tenureLabels) {
		t.Fatalf("labels = %v", data.Labels)
	}
	if data.Series[0].Name != "Q1 Cohort" || *data.Series[0].Points[0] != 80 {
		t.Fatalf("cohort series = %+v", data.Series[0])
	}
}
