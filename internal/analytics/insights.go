// internal/analytics/insights.go
package analytics

import (
	"fmt"
	"sort"
)

// Tone classifies an insight for presentation styling only.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

// Insight is one ranked natural-language observation about the cohort
// chart. Insights are advisory text and never feed back into chart data.
type Insight struct {
	Text string
	Tone Tone
}

// cohortStats summarizes one cohort's non-null points.
type cohortStats struct {
	name  string
	first float64
	last  float64
	count int
	mean  float64
	trend float64
}

// Summarize inspects an aggregated cohort series and emits observations in
// a fixed order: first-period best (and worst, if distinct), strongest
// positive ramp, weakest negative ramp, then the overall average. It is a
// pure function and returns an empty list when no cohort has any data.
func Summarize(cs CohortSeries) []Insight {
	stats := make([]cohortStats, 0, len(cs.Cohorts))
	for _, track := range cs.Cohorts {
		if s, ok := summarizeTrack(track); ok {
			stats = append(stats, s)
		}
	}
	if len(stats) == 0 {
		return nil
	}

	var insights []Insight

	byFirst := append([]cohortStats(nil), stats...)
	sort.SliceStable(byFirst, func(i, j int) bool { return byFirst[i].first > byFirst[j].first })
	best, worst := byFirst[0], byFirst[len(byFirst)-1]
	if best.name == worst.name {
		insights = append(insights, Insight{
			Text: fmt.Sprintf("%s leads out of the gate at %.1f%% first-quarter attainment.", best.name, best.first),
			Tone: TonePositive,
		})
	} else {
		insights = append(insights, Insight{
			Text: fmt.Sprintf("%s has the strongest first quarter at %.1f%%; %s trails at %.1f%%, a gap of %.1f points.",
				best.name, best.first, worst.name, worst.first, best.first-worst.first),
			Tone: TonePositive,
		})
	}

	ramped := stats[:0:0]
	for _, s := range stats {
		if s.count >= 2 {
			ramped = append(ramped, s)
		}
	}
	if len(ramped) > 0 {
		byTrend := append([]cohortStats(nil), ramped...)
		sort.SliceStable(byTrend, func(i, j int) bool { return byTrend[i].trend > byTrend[j].trend })
		if up := byTrend[0]; up.trend > 0 {
			insights = append(insights, Insight{
				Text: fmt.Sprintf("%s is ramping fastest, up %.1f points since its first quarter.", up.name, up.trend),
				Tone: TonePositive,
			})
		}
		if down := byTrend[len(byTrend)-1]; down.trend < 0 {
			insights = append(insights, Insight{
				Text: fmt.Sprintf("%s is trending down, off %.1f points from its first quarter.", down.name, -down.trend),
				Tone: ToneNegative,
			})
		}
	}

	overall := overallAverage(cs)
	tone := ToneNegative
	switch {
	case overall >= 100:
		tone = TonePositive
	case overall >= 80:
		tone = ToneNeutral
	}
	insights = append(insights, Insight{
		Text: fmt.Sprintf("Average attainment across all cohorts is %.1f%%.", overall),
		Tone: tone,
	})

	return insights
}

func summarizeTrack(track CohortTrack) (cohortStats, bool) {
	s := cohortStats{name: track.Name}
	var sum float64
	for _, p := range track.Points {
		if p == nil {
			continue
		}
		if s.count == 0 {
			s.first = *p
		}
		s.last = *p
		s.count++
		sum += *p
	}
	if s.count == 0 {
		return cohortStats{}, false
	}
	s.mean = sum / float64(s.count)
	if s.count >= 2 {
		s.trend = s.last - s.first
	}
	return s, true
}

// overallAverage computes the cross-cohort average per period, then the
// mean of those per-period averages.
func overallAverage(cs CohortSeries) float64 {
	var periodSum float64
	var periods int
	for i := range cs.Labels {
		var sum float64
		var count int
		for _, track := range cs.Cohorts {
			if i < len(track.Points) && track.Points[i] != nil {
				sum += *track.Points[i]
				count++
			}
		}
		if count > 0 {
			periodSum += sum / float64(count)
			periods++
		}
	}
	if periods == 0 {
		return 0
	}
	return periodSum / float64(periods)
}
