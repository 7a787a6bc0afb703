// internal/analytics/aggregate.go
package analytics

import (
	"sort"
)

// Accumulator holds the running sums for one region within one period.
// Accumulators are mutable during the single aggregation pass and
// read-only afterwards.
type Accumulator struct {
	Revenue         float64
	Deals           float64
	QualifiedClosed float64
	Reps            float64
	Target          float64

	// Weighted pair for the mix-adjusted win rate: sum of rate*weight and
	// sum of weights, divided after aggregation.
	WeightedRateSum float64
	RateWeight      float64
}

// Bucket is one period's aggregates, keyed by canonical region.
type Bucket struct {
	Period  Period
	Regions map[string]*Accumulator
}

// Label returns the bucket's axis label.
func (b Bucket) Label() string {
	return b.Period.Label()
}

// Region returns the accumulator for a region, or nil when no row for that
// region landed in this period.
func (b Bucket) Region(region string) *Accumulator {
	return b.Regions[region]
}

// AggregateQuarters folds revenue rows into ordered per-quarter buckets.
// Rows outside the canonical regions or excluded by the team filter are
// skipped. When requireTarget is set, rows without a positive target are
// skipped too. That check applies on top of the team filter, not in
// place of it.
func AggregateQuarters(rows []RevenueRow, filter *Filter, requireTarget bool) []Bucket {
	buckets := make(map[Period]*Bucket)

	for _, row := range rows {
		if requireTarget && row.TargetRevenue <= 0 {
			continue
		}
		if !filter.Matches(row.Team) {
			continue
		}
		if !IsCanonicalRegion(row.Region) {
			continue
		}

		acc := regionAccumulator(buckets, row.Period(), row.Region)
		acc.Revenue += row.ClosedWonRevenue
		acc.Deals += row.ClosedWonDeals
		acc.QualifiedClosed += row.QualifiedClosedDeals
		acc.Reps += row.DistinctReps
		acc.Target += row.TargetRevenue
	}

	return sortBuckets(buckets)
}

// AggregateMix folds mix-adjusted rows into ordered per-quarter buckets,
// accumulating the weighted sum/weight pair per region. A row only
// contributes when both its rate and its weight are non-zero: a zero-weight
// row must not pollute the denominator.
func AggregateMix(rows []MixRow) []Bucket {
	buckets := make(map[Period]*Bucket)

	for _, row := range rows {
		if !IsCanonicalRegion(row.Region) {
			continue
		}

		acc := regionAccumulator(buckets, row.Period(), row.Region)
		if row.MixAdjustedWinRate == nil || *row.MixAdjustedWinRate == 0 || row.TotalClosed == 0 {
			continue
		}
		acc.WeightedRateSum += *row.MixAdjustedWinRate * row.TotalClosed
		acc.RateWeight += row.TotalClosed
	}

	return sortBuckets(buckets)
}

func regionAccumulator(buckets map[Period]*Bucket, period Period, region string) *Accumulator {
	bucket, ok := buckets[period]
	if !ok {
		bucket = &Bucket{Period: period, Regions: make(map[string]*Accumulator)}
		buckets[period] = bucket
	}
	acc, ok := bucket.Regions[region]
	if !ok {
		acc = &Accumulator{}
		bucket.Regions[region] = acc
	}
	return acc
}

func sortBuckets(buckets map[Period]*Bucket) []Bucket {
	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Period.Before(out[j].Period)
	})
	return out
}

// tenureLabels is the fixed x-axis for the cohort chart.
var tenureLabels = []string{"First Quarter", "Second Quarter", "Third Quarter", "Fourth Quarter"}

// CohortTrack is one cohort's attainment across tenure quarters, aligned
// to CohortSeries.Labels; nil marks a tenure quarter with no data yet.
type CohortTrack struct {
	Name   string
	Points []*float64
}

// CohortSeries is the aggregated cohort chart shape shared by the renderer
// and the insight summarizer.
type CohortSeries struct {
	Labels  []string
	Cohorts []CohortTrack
}

// AggregateCohorts folds cohort rows into per-cohort attainment tracks.
// Rows excluded by the region filter are skipped; within a (cohort, tenure)
// cell the regional averages are averaged with null-coalescing addition and
// scaled to a percentage.
func AggregateCohorts(rows []CohortRow, filter *Filter) CohortSeries {
	type cell struct {
		total float64
		count int
	}
	cells := make(map[string]map[int]*cell)
	var cohorts []string

	for _, row := range rows {
		if row.Cohort == "" || row.TenureQuarter == "" {
			continue
		}
		if !filter.Matches(row.Region) {
			continue
		}

		byTenure, ok := cells[row.Cohort]
		if !ok {
			byTenure = make(map[int]*cell)
			cells[row.Cohort] = byTenure
			cohorts = append(cohorts, row.Cohort)
		}
		c, ok := byTenure[row.TenureNum]
		if !ok {
			c = &cell{}
			byTenure[row.TenureNum] = c
		}
		if row.AvgAttainment != nil {
			c.total += *row.AvgAttainment
		}
		c.count++
	}

	sort.Strings(cohorts)

	series := CohortSeries{Labels: tenureLabels}
	for _, cohort := range cohorts {
		track := CohortTrack{Name: cohort, Points: make([]*float64, len(tenureLabels))}
		for i := range tenureLabels {
			if c, ok := cells[cohort][i+1]; ok && c.count > 0 {
				pct := c.total / float64(c.count) * 100
				track.Points[i] = &pct
			}
		}
		series.Cohorts = append(series.Cohorts, track)
	}
	return series
}
