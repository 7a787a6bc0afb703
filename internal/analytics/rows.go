// internal/analytics/rows.go
package analytics

import (
	"github.com/mwiater/revlens/internal/warehouse"
)

// CanonicalRegions is the fixed set of regions every chart is restricted
// to. Rows carrying any other region value are dropped during aggregation.
var CanonicalRegions = []string{"AMER", "EMEA", "APAC"}

// IsCanonicalRegion reports whether a region participates in the charts.
func IsCanonicalRegion(region string) bool {
	for _, r := range CanonicalRegions {
		if r == region {
			return true
		}
	}
	return false
}

// RevenueRow is one revenue query record: warehouse-computed sums for a
// (region, team, year, quarter) grain. Numeric fields are null-coalesced to
// zero at decode time because they only ever feed accumulations.
type RevenueRow struct {
	Region               string
	Team                 string
	Year                 int
	Quarter              string
	ClosedWonRevenue     float64
	ClosedWonDeals       float64
	QualifiedClosedDeals float64
	DistinctReps         float64
	TargetRevenue        float64
}

// Period returns the row's reporting quarter.
func (r RevenueRow) Period() Period {
	return Period{Year: r.Year, Quarter: r.Quarter}
}

// DecodeRevenueRows converts raw revenue query rows into typed rows.
func DecodeRevenueRows(rows []warehouse.Row) []RevenueRow {
	out := make([]RevenueRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, RevenueRow{
			Region:               row.String("owner_region"),
			Team:                 row.String("team_restated"),
			Year:                 row.Int("year"),
			Quarter:              row.String("quarter"),
			ClosedWonRevenue:     row.Float("CW_LTR_sum"),
			ClosedWonDeals:       row.Float("CW_cnt_sum"),
			QualifiedClosedDeals: row.Float("closed_deal_cnt"),
			DistinctReps:         row.Float("rep_distinct"),
			TargetRevenue:        row.Float("target_revenue"),
		})
	}
	return out
}

// MixRow is one mix-adjusted win rate record. The rate is a pre-divided
// percentage and stays nil when the warehouse's division guard fired; the
// closed-deal count is its aggregation weight.
type MixRow struct {
	Region             string
	Year               int
	Quarter            string
	TotalClosed        float64
	MixAdjustedWinRate *float64
}

// Period returns the row's reporting quarter.
func (r MixRow) Period() Period {
	return Period{Year: r.Year, Quarter: r.Quarter}
}

// DecodeMixRows converts raw mix-adjusted query rows into typed rows.
func DecodeMixRows(rows []warehouse.Row) []MixRow {
	out := make([]MixRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, MixRow{
			Region:             row.String("owner_region"),
			Year:               row.Int("year"),
			Quarter:            row.String("quarter"),
			TotalClosed:        row.Float("total_closed"),
			MixAdjustedWinRate: row.NullFloat("mix_adjusted_win_rate_pct"),
		})
	}
	return out
}

// CohortRow is one hiring cohort record: average attainment for a (region,
// cohort, tenure-quarter) grain. Attainment arrives as a fraction and stays
// nil when absent.
type CohortRow struct {
	Region        string
	Cohort        string
	TenureQuarter string
	TenureNum     int
	AvgAttainment *float64
}

// DecodeCohortRows converts raw hiring cohort query rows into typed rows.
func DecodeCohortRows(rows []warehouse.Row) []CohortRow {
	out := make([]CohortRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, CohortRow{
			Region:        row.String("region"),
			Cohort:        row.String("cohort"),
			TenureQuarter: row.String("tenure_quarter"),
			TenureNum:     row.Int("tenure_quarter_num"),
			AvgAttainment: row.NullFloat("avg_attainment"),
		})
	}
	return out
}

// Teams returns the distinct non-blank team names in the row set, the
// universe for the team filter.
func Teams(rows []RevenueRow) []string {
	values := make([]string, 0, len(rows))
	for _, r := range rows {
		values = append(values, r.Team)
	}
	return NewFilter(values).Universe()
}

// CohortRegions returns the distinct non-blank regions in the cohort row
// set, the universe for the hiring region filter.
func CohortRegions(rows []CohortRow) []string {
	values := make([]string, 0, len(rows))
	for _, r := range rows {
		values = append(values, r.Region)
	}
	return NewFilter(values).Universe()
}
