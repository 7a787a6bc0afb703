// internal/warehouse/queries.go
package warehouse

// The dashboard's three analytical queries. Each is a fixed text: the
// application never builds SQL dynamically, and the filter UI operates on
// the returned rows, not on the query. The leading comment names the query
// for logging.

// RevenueQuery returns one row per (region, team, year, quarter) with the
// accumulated revenue fields used by the quarterly charts. The division
// guards mean the pre-divided columns come back NULL when a denominator is
// zero.
const RevenueQuery = `
-- revlens: revenue
WITH final AS (
  SELECT
    tsp.owner_region,
    CASE
      WHEN tsp.owner_segment IN ('Global Account','Enterprise') THEN tsp.owner_segment
      WHEN tsp.owner_line_of_business = 'B2B' AND tsp.owner_motion = 'Acquisition' THEN 'B2B Large Mid-Mkt Acquisition'
      WHEN tsp.owner_line_of_business = 'B2B' THEN 'B2B Large Mid-Mkt Cross-Sell'
      WHEN tsp.owner_segment = 'Mid-Mkt' AND tsp.owner_line_of_business IN ('D2C','Retail','D2C Retail') THEN 'D2C Retail Mid-Mkt'
      WHEN tsp.owner_segment = 'Large' AND tsp.owner_line_of_business IN ('D2C','Retail','D2C Retail') THEN 'D2C Retail Large'
      WHEN tsp.owner_segment IN ('SMB','Core') AND tsp.owner_line_of_business = 'D2C' THEN 'D2C SMB Acquisition'
      WHEN tsp.owner_segment IN ('SMB','Core') AND tsp.owner_line_of_business = 'Retail' THEN 'Retail SMB Acquisition'
      ELSE 'D2C Retail SMB Cross-Sell'
    END AS team_restated,
    YEAR(tsp.close_date) AS year,
    CONCAT('Q', QUARTER(tsp.close_date)) AS quarter,
    SUM(tsp.closed_won_lifetime_total_revenue) AS CW_LTR_sum,
    SUM(tsp.closed_won_opportunity_count) AS CW_cnt_sum,
    SUM(CASE WHEN tsp.current_stage_name IN ('Closed Won','Closed Lost') AND tsp.is_qualified THEN 1 ELSE 0 END) AS closed_deal_cnt,
    COUNT(DISTINCT CASE WHEN tsp.current_stage_name IN ('Closed Won','Closed Lost') THEN tsp.salesforce_owner_id END) AS rep_distinct,
    SUM(tsp.closed_won_lifetime_total_revenue_target) AS target_revenue,
    SUM(tsp.closed_won_opportunity_count) / NULLIF(COUNT(DISTINCT CASE WHEN tsp.current_stage_name IN ('Closed Won','Closed Lost') THEN tsp.salesforce_owner_id END), 0) AS deals_per_rep,
    SUM(tsp.closed_won_lifetime_total_revenue) / NULLIF(SUM(tsp.closed_won_opportunity_count), 0) AS deal_size,
    SUM(tsp.closed_won_lifetime_total_revenue) / NULLIF(SUM(tsp.closed_won_lifetime_total_revenue_target), 0) * 100 AS attainment_pct,
    SUM(tsp.closed_won_opportunity_count) / NULLIF(SUM(CASE WHEN tsp.current_stage_name IN ('Closed Won','Closed Lost') AND tsp.is_qualified THEN 1 ELSE 0 END), 0) * 100 AS win_rate_pct
  FROM temp_sales_performance tsp
  WHERE tsp.close_date BETWEEN '2024-01-01' AND '2026-03-31'
    AND tsp.owner_line_of_business NOT IN ('Lending', 'Ads')
    AND tsp.owner_team NOT LIKE '%CSM%'
  GROUP BY tsp.owner_region, team_restated, year, quarter
)
SELECT *
FROM final
ORDER BY owner_region, team_restated, year, quarter
`

// MixAdjustedQuery returns per (region, year, quarter) win rates reweighted
// by the fixed Q4 2025 GMV-segment mix. The weighting itself happens in the
// warehouse; the client only re-aggregates the weighted sum/weight pair.
const MixAdjustedQuery = `
-- revlens: mix_adjusted
WITH base_data AS (
  SELECT
    tsp.opportunity_id,
    tsp.is_won,
    tsp.owner_region AS region,
    CASE
      WHEN COALESCE(tsp.committed_d2c_gmv, 0) + COALESCE(tsp.committed_retail_gmv, 0) + COALESCE(tsp.committed_b2b_gmv, 0) <   5000000 THEN '0-5M'
      WHEN COALESCE(tsp.committed_d2c_gmv, 0) + COALESCE(tsp.committed_retail_gmv, 0) + COALESCE(tsp.committed_b2b_gmv, 0) <  10000000 THEN '5-10M'
      WHEN COALESCE(tsp.committed_d2c_gmv, 0) + COALESCE(tsp.committed_retail_gmv, 0) + COALESCE(tsp.committed_b2b_gmv, 0) <  20000000 THEN '10-20M'
      WHEN COALESCE(tsp.committed_d2c_gmv, 0) + COALESCE(tsp.committed_retail_gmv, 0) + COALESCE(tsp.committed_b2b_gmv, 0) <  50000000 THEN '20-50M'
      WHEN COALESCE(tsp.committed_d2c_gmv, 0) + COALESCE(tsp.committed_retail_gmv, 0) + COALESCE(tsp.committed_b2b_gmv, 0) < 100000000 THEN '50-100M'
      ELSE '100M+'
    END AS gmv_segment,
    YEAR(tsp.close_date) AS close_year,
    QUARTER(tsp.close_date) AS close_quarter
  FROM temp_sales_performance tsp
  WHERE tsp.close_date IS NOT NULL
    AND tsp.current_stage_name IN ('Closed Won', 'Closed Lost')
    AND tsp.is_qualified
    AND tsp.close_date >= '2024-01-01'
    AND tsp.owner_line_of_business NOT IN ('Ads', 'Lending')
    AND tsp.owner_team NOT LIKE '%CSM%'
    AND tsp.owner_segment NOT IN ('SMB', 'Core')
),
conversion_by_region_segment AS (
  SELECT
    close_year, close_quarter, region, gmv_segment,
    COUNT(DISTINCT opportunity_id) AS total_closed,
    COUNT(DISTINCT CASE WHEN is_won THEN opportunity_id END) AS total_won,
    COUNT(DISTINCT CASE WHEN is_won THEN opportunity_id END) / NULLIF(COUNT(DISTINCT opportunity_id), 0) AS conversion_rate
  FROM base_data
  GROUP BY close_year, close_quarter, region, gmv_segment
),
q4_2025_mix_global AS (
  SELECT
    gmv_segment,
    COUNT(DISTINCT opportunity_id) / NULLIF(SUM(COUNT(DISTINCT opportunity_id)) OVER (), 0) AS baseline_mix_pct
  FROM base_data
  WHERE close_year = 2025 AND close_quarter = 4
  GROUP BY gmv_segment
),
region_totals AS (
  SELECT
    c.close_year, c.close_quarter, c.region,
    SUM(c.total_won) / NULLIF(SUM(c.total_closed), 0) AS unadjusted_conv,
    SUM(c.conversion_rate * COALESCE(g.baseline_mix_pct, 0)) AS mix_adjusted_conv,
    SUM(c.total_closed) AS total_closed,
    SUM(c.total_won) AS total_won
  FROM conversion_by_region_segment c
  LEFT JOIN q4_2025_mix_global g ON c.gmv_segment = g.gmv_segment
  GROUP BY c.close_year, c.close_quarter, c.region
)
SELECT
  close_year AS year,
  CONCAT('Q', close_quarter) AS quarter,
  region AS owner_region,
  total_closed,
  total_won,
  ROUND(unadjusted_conv * 100, 1) AS unadjusted_win_rate_pct,
  ROUND(mix_adjusted_conv * 100, 1) AS mix_adjusted_win_rate_pct
FROM region_totals
ORDER BY close_year, close_quarter, region
`

// HiringCohortQuery returns average attainment per (region, cohort, tenure
// quarter) for reps who started in 2025, tracked by quarters since start.
const HiringCohortQuery = `
-- revlens: hiring_cohort
WITH base_data AS (
  SELECT
    region,
    CASE
      WHEN shopify_start_date BETWEEN '2025-01-01' AND '2025-03-31' THEN 'Q1 Cohort'
      WHEN shopify_start_date BETWEEN '2025-04-01' AND '2025-06-30' THEN 'Q2 Cohort'
      WHEN shopify_start_date BETWEEN '2025-07-01' AND '2025-09-30' THEN 'Q3 Cohort'
      WHEN shopify_start_date BETWEEN '2025-10-01' AND '2025-12-31' THEN 'Q4 Cohort'
    END AS cohort,
    TIMESTAMPDIFF(QUARTER, MAKEDATE(YEAR(shopify_start_date), 1) + INTERVAL QUARTER(shopify_start_date) - 1 QUARTER,
                  month_date) + 1 AS tenure_quarter_num,
    value
  FROM modelled_rep_scorecard
  WHERE metric LIKE '%Attainment LTR%'
    AND shopify_start_date >= '2025-01-01'
)
SELECT
  region,
  cohort,
  CASE tenure_quarter_num
    WHEN 1 THEN 'First Quarter'
    WHEN 2 THEN 'Second Quarter'
    WHEN 3 THEN 'Third Quarter'
    WHEN 4 THEN 'Fourth Quarter'
    WHEN 5 THEN 'Fifth Quarter'
    WHEN 6 THEN 'Sixth Quarter'
  END AS tenure_quarter,
  tenure_quarter_num,
  AVG(value) AS avg_attainment
FROM base_data
WHERE cohort IS NOT NULL
  AND tenure_quarter_num >= 1
GROUP BY region, cohort, tenure_quarter, tenure_quarter_num
ORDER BY cohort, tenure_quarter_num
`
