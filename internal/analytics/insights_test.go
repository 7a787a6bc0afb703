package analytics

import (
	"strings"
	"testing"
)

func cohortSeries(tracks ...CohortTrack) CohortSeries {
	return CohortSeries{Labels: tenureLabels, Cohorts: tracks}
}

func TestSummarizeAllNullIsEmpty(t *testing.T) {
	cs := cohortSeries(
		CohortTrack{Name: "Q1 Cohort", Points: make([]*float64, 4)},
		CohortTrack{Name: "Q2 Cohort", Points: make([]*float64, 4)},
	)
	if got := Summarize(cs); got != nil {
		t.Fatalf("expected no insights for an all-null series, got %v", got)
	}
	if got := Summarize(CohortSeries{}); got != nil {
		t.Fatalf("expected no insights for an empty series, got %v", got)
	}
}

func TestSummarizeFixedOrderAndContent(t *testing.T) {
	cs := cohortSeries(
		CohortTrack{Name: "Q1 Cohort", Points: []*float64{fptr(90), fptr(110), nil, nil}},
		CohortTrack{Name: "Q2 Cohort", Points: []*float64{fptr(70), fptr(60), nil, nil}},
	)
	insights := Summarize(cs)

	if len(insights) != 4 {
		t.Fatalf("expected 4 insights, got %d: %v", len(insights), insights)
	}
	if !strings.Contains(insights[0].Text, "Q1 Cohort has the strongest first quarter") {
		t.Fatalf("first insight = %q", insights[0].Text)
	}
	if !strings.Contains(insights[0].Text, "gap of 20.0 points") {
		t.Fatalf("gap missing from %q", insights[0].Text)
	}
	if !strings.Contains(insights[1].Text, "Q1 Cohort is ramping fastest, up 20.0 points") {
		t.Fatalf("second insight = %q", insights[1].Text)
	}
	if insights[1].Tone != TonePositive {
		t.Fatalf("ramp tone = %v", insights[1].Tone)
	}
	if !strings.Contains(insights[2].Text, "Q2 Cohort is trending down, off 10.0 points") {
		t.Fatalf("third insight = %q", insights[2].Text)
	}
	if insights[2].Tone != ToneNegative {
		t.Fatalf("decline tone = %v", insights[2].Tone)
	}
	if !strings.Contains(insights[3].Text, "Average attainment across all cohorts") {
		t.Fatalf("final insight = %q", insights[3].Text)
	}
}

func TestSummarizeTrendInsightsOnlyWhenDirectional(t *testing.T) {
	cs := cohortSeries(
		CohortTrack{Name: "Q1 Cohort", Points: []*float64{fptr(100), fptr(100), nil, nil}},
	)
	insights := Summarize(cs)

	for _, in := range insights {
		if strings.Contains(in.Text, "ramping") || strings.Contains(in.Text, "trending down") {
			t.Fatalf("flat trend produced a directional insight: %q", in.Text)
		}
	}
}

func TestSummarizeOverallAverageTone(t *testing.T) {
	cases := []struct {
		value float64
		want  Tone
	}{
		{105, TonePositive},
		{100, TonePositive},
		{90, ToneNeutral},
		{80, ToneNeutral},
		{70, ToneNegative},
	}
	for _, tc := range cases {
		cs := cohortSeries(CohortTrack{Name: "Q1 Cohort", Points: []*float64{fptr(tc.value), nil, nil, nil}})
		insights := Summarize(cs)
		last := insights[len(insights)-1]
		if last.Tone != tc.want {
			t.Fatalf("overall average %v tone = %v, want %v", tc.value, last.Tone, tc.want)
		}
	}
}

func TestOverallAverageIsMeanOfPeriodAverages(t *testing.T) {
	// Period averages: (100+60)/2 = 80 and 90 alone; overall (80+90)/2 = 85.
	cs := cohortSeries(
		CohortTrack{Name: "Q1 Cohort", Points: []*float64{fptr(100), fptr(90), nil, nil}},
		CohortTrack{Name: "Q2 Cohort", Points: []*float64{fptr(60), nil, nil, nil}},
	)
	if got := overallAverage(cs); got != 85 {
		t.Fatalf("overall average = %v, want 85", got)
	}
}
