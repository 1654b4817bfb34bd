// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradejournal/internal/export"
	"tradejournal/internal/logging"
	"tradejournal/internal/store"
)

// addExportCommand adds the CSV export command.
func addExportCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal to CSV",
		Example: `  journal export
  journal export --out trades-2024.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				out = fmt.Sprintf("journal-%s.csv", time.Now().Format("2006-01-02"))
			}

			trades, err := app.Store.GetTrades(ctx, store.TradeFilter{})
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			rows, err := export.TradesCSV(out, trades)
			if err != nil {
				output.Error("Export failed: %v", err)
				return err
			}

			logging.LogExport(app.Logger, out, rows)
			output.Success("✓ Exported %d trades to %s", rows, out)
			return nil
		},
	}

	cmd.Flags().String("out", "", "Output file (default journal-<date>.csv)")
	rootCmd.AddCommand(cmd)
}
