// internal/analytics/period.go
// Package analytics is the dashboard's aggregation core: it folds the flat
// rows returned by the warehouse queries into ordered per-quarter,
// per-region accumulators, derives the chart metrics with explicit
// absent-value semantics, and builds the label-aligned series the
// renderers consume.
package analytics

import "fmt"

// Period identifies one reporting quarter by calendar year and quarter label.
type Period struct {
	Year    int
	Quarter string
}

// quarterOrdinals maps every quarter label the queries emit to its natural
// position. Sorting must go through this table: "Fourth Quarter" sorts
// before "Second Quarter" as a string.
var quarterOrdinals = map[string]int{
	"Q1": 1, "Q2": 2, "Q3": 3, "Q4": 4,
	"First Quarter":  1,
	"Second Quarter": 2,
	"Third Quarter":  3,
	"Fourth Quarter": 4,
	"Fifth Quarter":  5,
	"Sixth Quarter":  6,
}

// Ordinal returns the quarter's position within the year, or 0 for a label
// the ordinal table does not know.
func (p Period) Ordinal() int {
	return quarterOrdinals[p.Quarter]
}

// Before orders periods by year, then by quarter ordinal.
func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Ordinal() < o.Ordinal()
}

// Label renders the axis label for the period, e.g. "2025 Q1".
func (p Period) Label() string {
	return fmt.Sprintf("%d %s", p.Year, p.Quarter)
}

// mixCutoffPeriod is the known-incomplete quarter excluded from the
// mix-adjusted win rate chart. It is removed symmetrically from labels and
// every series, not nulled out.
var mixCutoffPeriod = Period{Year: 2026, Quarter: "Q1"}
