// internal/analytics/metrics.go
package analytics

// Metric identifies one derived chart metric.
type Metric int

const (
	// DealsPerRep is closed-won deals divided by distinct reps.
	DealsPerRep Metric = iota
	// AvgDealSize is closed-won revenue divided by closed-won deals.
	AvgDealSize
	// AttainmentPct is closed-won revenue over target revenue, as a
	// percentage. Only meaningful over buckets built with the target>0
	// precondition.
	AttainmentPct
	// WinRatePct is closed-won deals over qualified closed deals, as a
	// percentage.
	WinRatePct
	// MixAdjustedWinRatePct is the weighted average of pre-weighted
	// mix-adjusted rates, weighted by closed-deal counts.
	MixAdjustedWinRatePct
)

// String returns the metric's display title.
func (m Metric) String() string {
	switch m {
	case DealsPerRep:
		return "Deals per Rep"
	case AvgDealSize:
		return "Average Deal Size"
	case AttainmentPct:
		return "Attainment %"
	case WinRatePct:
		return "Win Rate %"
	case MixAdjustedWinRatePct:
		return "Mix-Adjusted Win Rate %"
	default:
		return "Unknown"
	}
}

// AxisLabel returns the y-axis label for the metric's chart.
func (m Metric) AxisLabel() string {
	switch m {
	case DealsPerRep:
		return "Deals / Rep"
	case AvgDealSize:
		return "Avg Deal Size ($)"
	case AttainmentPct:
		return "Attainment (%)"
	case WinRatePct, MixAdjustedWinRatePct:
		return "Win Rate (%)"
	default:
		return "Value"
	}
}

// Percentage reports whether the metric renders with a percent scale.
func (m Metric) Percentage() bool {
	switch m {
	case AttainmentPct, WinRatePct, MixAdjustedWinRatePct:
		return true
	default:
		return false
	}
}

// Value computes the metric for one region within one bucket. The result
// is nil, an explicit gap rather than zero, when the region is missing
// from the bucket or the metric's denominator is zero.
func (m Metric) Value(b Bucket, region string) *float64 {
	acc := b.Region(region)
	if acc == nil {
		return nil
	}
	switch m {
	case DealsPerRep:
		return ratio(acc.Deals, acc.Reps, 1)
	case AvgDealSize:
		return ratio(acc.Revenue, acc.Deals, 1)
	case AttainmentPct:
		return ratio(acc.Revenue, acc.Target, 100)
	case WinRatePct:
		return ratio(acc.Deals, acc.QualifiedClosed, 100)
	case MixAdjustedWinRatePct:
		return ratio(acc.WeightedRateSum, acc.RateWeight, 1)
	default:
		return nil
	}
}

// ratio divides with a guard: a zero denominator yields an absent value,
// never NaN or Inf.
func ratio(num, den, scale float64) *float64 {
	if den == 0 {
		return nil
	}
	v := num / den * scale
	return &v
}

// Totals sums revenue and target revenue across all regions per bucket,
// for the combined actuals-vs-targets chart. A zero total is reported as
// absent so empty quarters render as gaps.
func Totals(buckets []Bucket) (actuals, targets []*float64) {
	actuals = make([]*float64, len(buckets))
	targets = make([]*float64, len(buckets))
	for i, b := range buckets {
		var revenue, target float64
		for _, acc := range b.Regions {
			revenue += acc.Revenue
			target += acc.Target
		}
		if revenue > 0 {
			v := revenue
			actuals[i] = &v
		}
		if target > 0 {
			v := target
			targets[i] = &v
		}
	}
	return actuals, targets
}
