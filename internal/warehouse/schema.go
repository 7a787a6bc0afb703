// internal/warehouse/schema.go
package warehouse

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Result schemas guard the decode step: a warehouse-side change that drops
// or renames a column fails loudly here instead of folding silent zeros
// into the charts. The text protocol can deliver numerics as strings, so
// value types stay permissive; presence is the contract.

func resultSchema(columns []string) map[string]any {
	props := make(map[string]any, len(columns))
	for _, col := range columns {
		props[col] = map[string]any{
			"type": []string{"number", "string", "boolean", "null"},
		}
	}
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":       "object",
			"required":   columns,
			"properties": props,
		},
	}
}

var (
	revenueResultSchema = resultSchema([]string{
		"owner_region", "team_restated", "year", "quarter",
		"CW_LTR_sum", "CW_cnt_sum", "closed_deal_cnt", "rep_distinct", "target_revenue",
	})
	mixAdjustedResultSchema = resultSchema([]string{
		"owner_region", "year", "quarter",
		"total_closed", "total_won", "mix_adjusted_win_rate_pct",
	})
	hiringCohortResultSchema = resultSchema([]string{
		"region", "cohort", "tenure_quarter", "tenure_quarter_num", "avg_attainment",
	})
)

// ValidateRevenueResults checks the revenue query payload shape.
func ValidateRevenueResults(rows []Row) error {
	return validateRows("revenue", rows, revenueResultSchema)
}

// ValidateMixAdjustedResults checks the mix-adjusted query payload shape.
func ValidateMixAdjustedResults(rows []Row) error {
	return validateRows("mix_adjusted", rows, mixAdjustedResultSchema)
}

// ValidateHiringCohortResults checks the hiring cohort query payload shape.
func ValidateHiringCohortResults(rows []Row) error {
	return validateRows("hiring_cohort", rows, hiringCohortResultSchema)
}

func validateRows(query string, rows []Row, schemaDef map[string]any) error {
	if len(rows) == 0 {
		// Zero rows is the empty state, handled upstream.
		return nil
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal %s results: %w", query, err)
	}

	schemaLoader := gojsonschema.NewGoLoader(schemaDef)
	documentLoader := gojsonschema.NewBytesLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validate %s results: %w", query, err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return fmt.Errorf("%s results do not match the expected shape: %s", query, first.String())
	}
	return nil
}
