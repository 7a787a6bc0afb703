// internal/cli/report.go
package revlens

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mwiater/revlens/internal/analytics"
	"github.com/mwiater/revlens/internal/dashboard"
	"github.com/mwiater/revlens/internal/logging"
	"github.com/mwiater/revlens/internal/render"
	"github.com/mwiater/revlens/internal/warehouse"
)

var successText = color.New(color.FgGreen).SprintFunc()
var failureText = color.New(color.FgRed).SprintFunc()

// reportCmd represents the 'report' command, which exports the dashboard
// as a standalone HTML page without opening the TUI.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export the revenue dashboard as an HTML report",
	Long:  `The 'report' command runs every dashboard query against the configured warehouse and writes all charts and insights to a standalone HTML file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil || strings.TrimSpace(cfg.Warehouse.DSN) == "" {
			return fmt.Errorf("no warehouse configured: set warehouse.dsn in %s", cfgFile)
		}
		if cfg.Debug {
			pp.Println(cfg)
		}

		client, err := warehouse.Open(cfg.Warehouse.DSN, cfg.QueryTimeout())
		if err != nil {
			return fmt.Errorf("open warehouse: %w", err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				logging.LogEvent("warehouse shutdown error: %v", err)
			}
		}()

		ctx := cmd.Context()
		loader := dashboard.NewLoader(client, client, cfg.ScopeList())
		bar := progressbar.Default(4)

		if err := loader.Authorize(ctx); err != nil {
			fmt.Println(failureText("warehouse access check failed"))
			return err
		}
		_ = bar.Add(1)

		snapshot, err := loader.Load(ctx)
		if err != nil {
			fmt.Println(failureText("revenue refresh failed"))
			return err
		}
		_ = bar.Add(1)

		cohorts, err := loader.LoadCohorts(ctx)
		if err != nil {
			fmt.Println(failureText("hiring cohort load failed"))
			return err
		}
		_ = bar.Add(1)

		report := render.Report{
			Title:    "Revenue Performance",
			Subtitle: snapshot.TeamFilter.SummaryLabel("Teams"),
		}
		for _, chart := range snapshot.RevenueCharts() {
			report.Charts = append(report.Charts, render.RegionChart(chart.Metric, chart.Data))
		}
		totals := snapshot.TotalsChart()
		report.Charts = append(report.Charts, render.TotalsChart(totals.DisplayTitle(), totals.Data))
		if !cohorts.Empty() {
			report.Charts = append(report.Charts, render.CohortChart(analytics.BuildCohortChart(cohorts.Series())))
			report.Insights = cohorts.Insights()
		}

		path := cfg.ExportFilePath()
		if err := render.WriteHTMLFile(report, path); err != nil {
			fmt.Println(failureText("report export failed"))
			return err
		}
		_ = bar.Add(1)

		fmt.Println(successText(fmt.Sprintf("report written to %s", path)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
