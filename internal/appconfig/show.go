package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	if cfg == nil {
		fmt.Fprintf(out, "  Debug:         %v\n", fallback.Debug)
		fmt.Fprintf(out, "  Warehouse:     %s\n", fallback.Warehouse.Name)
		fmt.Fprintf(out, "  Query Timeout: %s\n", fallback.QueryTimeout())
		fmt.Fprintf(out, "  Export Path:   %s\n", fallback.ExportFilePath())
		fmt.Fprintf(out, "  Log File:      %s\n", fallback.LogFilePath())
		return
	}

	fmt.Fprintf(out, "  Debug:         %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Warehouse:     %s\n", cfg.Warehouse.Name)
	fmt.Fprintf(out, "  Scopes:        %v\n", cfg.ScopeList())
	fmt.Fprintf(out, "  Query Timeout: %s\n", cfg.QueryTimeout())
	fmt.Fprintf(out, "  Export Path:   %s\n", cfg.ExportFilePath())
	fmt.Fprintf(out, "  Log File:      %s\n", cfg.LogFilePath())
}
