package analytics

import "testing"

func bucketWith(region string, acc Accumulator) Bucket {
	return Bucket{
		Period:  Period{Year: 2025, Quarter: "Q1"},
		Regions: map[string]*Accumulator{region: &acc},
	}
}

func TestMetricValueGuardsZeroDenominators(t *testing.T) {
	b := bucketWith("AMER", Accumulator{Revenue: 1000, Deals: 0, Reps: 0, QualifiedClosed: 0, Target: 0})

	for _, m := range []Metric{DealsPerRep, AvgDealSize, AttainmentPct, WinRatePct, MixAdjustedWinRatePct} {
		if got := m.Value(b, "AMER"); got != nil {
			t.Fatalf("%s with zero denominator = %v, want nil", m, *got)
		}
	}
}

func TestMetricValueMissingRegionIsAbsent(t *testing.T) {
	b := bucketWith("AMER", Accumulator{Revenue: 100, Deals: 4, Reps: 2})

	if got := DealsPerRep.Value(b, "EMEA"); got != nil {
		t.Fatalf("missing region = %v, want nil", *got)
	}
	if got := DealsPerRep.Value(b, "AMER"); got == nil || *got != 2 {
		t.Fatalf("present region = %v, want 2", got)
	}
}

func TestMetricValues(t *testing.T) {
	b := bucketWith("AMER", Accumulator{
		Revenue:         1200,
		Deals:           4,
		QualifiedClosed: 16,
		Reps:            2,
		Target:          1000,
		WeightedRateSum: 5,   // 0.5*10
		RateWeight:      10,
	})

	cases := []struct {
		metric Metric
		want   float64
	}{
		{DealsPerRep, 2},
		{AvgDealSize, 300},
		{AttainmentPct, 120},
		{WinRatePct, 25},
		{MixAdjustedWinRatePct, 0.5},
	}
	for _, tc := range cases {
		got := tc.metric.Value(b, "AMER")
		if got == nil || *got != tc.want {
			t.Fatalf("%s = %v, want %v", tc.metric, got, tc.want)
		}
	}
}

func TestWeightedMixDropsZeroWeightPair(t *testing.T) {
	rows := []MixRow{
		{Region: "EMEA", Year: 2025, Quarter: "Q2", TotalClosed: 10, MixAdjustedWinRate: fptr(0.5)},
		{Region: "EMEA", Year: 2025, Quarter: "Q2", TotalClosed: 0, MixAdjustedWinRate: fptr(0.8)},
	}
	buckets := AggregateMix(rows)

	got := MixAdjustedWinRatePct.Value(buckets[0], "EMEA")
	if got == nil || *got != 0.5 {
		t.Fatalf("weighted average = %v, want 0.5", got)
	}
}

func TestTotalsReportZeroAsAbsent(t *testing.T) {
	buckets := []Bucket{
		bucketWith("AMER", Accumulator{Revenue: 500, Target: 400}),
		bucketWith("AMER", Accumulator{Revenue: 0, Target: 0}),
	}
	actuals, targets := Totals(buckets)

	if actuals[0] == nil || *actuals[0] != 500 || targets[0] == nil || *targets[0] != 400 {
		t.Fatalf("first bucket totals = %v / %v, want 500 / 400", actuals[0], targets[0])
	}
	if actuals[1] != nil || targets[1] != nil {
		t.Fatal("zero totals must render as gaps, not zeros")
	}
}

func TestTotalsSumAcrossRegions(t *testing.T) {
	b := Bucket{
		Period: Period{Year: 2025, Quarter: "Q3"},
		Regions: map[string]*Accumulator{
			"AMER": {Revenue: 100, Target: 200},
			"EMEA": {Revenue: 50, Target: 75},
		},
	}
	actuals, targets := Totals([]Bucket{b})

	if actuals[0] == nil || *actuals[0] != 150 {
		t.Fatalf("cross-region actuals = %v, want 150", actuals[0])
	}
	if targets[0] == nil || *targets[0] != 275 {
		t.Fatalf("cross-region targets = %v, want 275", targets[0])
	}
}
