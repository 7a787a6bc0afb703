// internal/analytics/series.go
package analytics

// Series is one chart line: a name and per-period values aligned
// index-for-index with the owning ChartData's labels. A nil point is a gap
// and renders as a break, not a zero dip.
type Series struct {
	Name   string
	Points []*float64
}

// ChartData is the render-ready shape for one chart.
type ChartData struct {
	Labels []string
	Series []Series
}

// BuildSeries produces one series per region for the given metric over the
// ordered buckets.
func BuildSeries(buckets []Bucket, metric Metric, regions []string) ChartData {
	data := ChartData{Labels: make([]string, len(buckets))}
	for i, b := range buckets {
		data.Labels[i] = b.Label()
	}
	for _, region := range regions {
		s := Series{Name: region, Points: make([]*float64, len(buckets))}
		for i, b := range buckets {
			s.Points[i] = metric.Value(b, region)
		}
		data.Series = append(data.Series, s)
	}
	return data
}

// BuildMixSeries builds the mix-adjusted win rate chart. The incomplete
// cutoff period is removed from the bucket list before the series are
// built, so it disappears from the labels and from every region's points
// at the same index.
func BuildMixSeries(buckets []Bucket, regions []string) ChartData {
	kept := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		if b.Period == mixCutoffPeriod {
			continue
		}
		kept = append(kept, b)
	}
	return BuildSeries(kept, MixAdjustedWinRatePct, regions)
}

// BuildTotalsSeries builds the combined actuals-vs-targets chart over
// buckets aggregated with the target>0 precondition.
func BuildTotalsSeries(buckets []Bucket) ChartData {
	data := ChartData{Labels: make([]string, len(buckets))}
	for i, b := range buckets {
		data.Labels[i] = b.Label()
	}
	actuals, targets := Totals(buckets)
	data.Series = []Series{
		{Name: "Actuals (LTR)", Points: actuals},
		{Name: "Targets (LTR)", Points: targets},
	}
	return data
}

// BuildCohortChart adapts an aggregated cohort series to the render shape.
func BuildCohortChart(cs CohortSeries) ChartData {
	data := ChartData{Labels: cs.Labels}
	for _, track := range cs.Cohorts {
		data.Series = append(data.Series, Series{Name: track.Name, Points: track.Points})
	}
	return data
}
