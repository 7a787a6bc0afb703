// internal/analytics/calendar.go
package analytics

import "strings"

// cohortStartOrdinal reads the starting quarter out of a cohort name like
// "Q1 Cohort". Unknown names report 0.
func cohortStartOrdinal(name string) int {
	prefix, _, ok := strings.Cut(name, " ")
	if !ok {
		return 0
	}
	return quarterOrdinals[prefix]
}

// AlignCohortsByCalendar re-plots cohort tracks from tenure quarters onto
// calendar quarters: a Q2 cohort's first tenure quarter lands on year Q2,
// its second on Q3, spilling into the following year past Q4. Cohorts with
// an unrecognized name keep their tenure alignment from the first label.
// The tenure view stays the canonical shape for the summarizer.
func AlignCohortsByCalendar(cs CohortSeries, startYear int) CohortSeries {
	if len(cs.Cohorts) == 0 {
		return CohortSeries{}
	}

	minOffset, maxOffset := -1, -1
	offsets := make([]int, len(cs.Cohorts))
	for i, track := range cs.Cohorts {
		start := cohortStartOrdinal(track.Name)
		if start < 1 {
			start = 1
		}
		offsets[i] = start - 1
		last := offsets[i] + len(track.Points) - 1
		if minOffset < 0 || offsets[i] < minOffset {
			minOffset = offsets[i]
		}
		if last > maxOffset {
			maxOffset = last
		}
	}

	span := maxOffset - minOffset + 1
	aligned := CohortSeries{Labels: make([]string, span)}
	for i := 0; i < span; i++ {
		ordinal := minOffset + i
		period := Period{Year: startYear + ordinal/4, Quarter: quarterLabels[ordinal%4]}
		aligned.Labels[i] = period.Label()
	}

	for i, track := range cs.Cohorts {
		shifted := CohortTrack{Name: track.Name, Points: make([]*float64, span)}
		for j, p := range track.Points {
			shifted.Points[offsets[i]-minOffset+j] = p
		}
		aligned.Cohorts = append(aligned.Cohorts, shifted)
	}
	return aligned
}

// quarterLabels maps a zero-based quarter ordinal to its short label.
var quarterLabels = [4]string{"Q1", "Q2", "Q3", "Q4"}
