// internal/cli/dashboard.go
package revlens

import (
	"context"
	"fmt"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/mwiater/revlens/internal/dashboard"
	"github.com/mwiater/revlens/internal/logging"
	"github.com/mwiater/revlens/internal/tui"
	"github.com/mwiater/revlens/internal/warehouse"
)

// dashboardCmd represents the 'dashboard' command, which opens the
// interactive terminal dashboard.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive revenue dashboard",
	Long:  `The 'dashboard' command connects to the configured warehouse and opens the interactive revenue performance dashboard.`,
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

		ctx, cancel := context.WithCancel(cmd.Context())
		loader := dashboard.NewLoader(client, client, cfg.ScopeList())
		tui.Start(ctx, cfg, loader, cancel)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
