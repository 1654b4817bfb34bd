// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradejournal/internal/analytics"
	"tradejournal/internal/store"
)

// addCalendarCommand adds the monthly calendar command.
func addCalendarCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Monthly P&L calendar",
		Long: `Show a weekday-aligned calendar of the month, coloring each day by its
aggregate net P&L: green for profit, red for loss, bright for days beyond
the configured threshold.`,
		Example: `  journal calendar
  journal calendar --offset -1   # previous month
  journal calendar --offset 2    # two months ahead`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			offset, _ := cmd.Flags().GetInt("offset")
			now := time.Now()
			year, month := analytics.AddMonths(now.Year(), now.Month(), offset)

			trades, err := app.Store.GetTrades(ctx, store.TradeFilter{})
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			cells := app.Engine.BuildMonth(trades, year, month)

			if output.IsJSON() {
				return output.JSON(cells)
			}

			output.Bold("%s %d", month, year)
			output.Println()
			output.Println("  Sun  Mon  Tue  Wed  Thu  Fri  Sat")

			col := 0
			line := ""
			for _, cell := range cells {
				line += "  " + renderDayCell(output, cell)
				col++
				if col == 7 {
					output.Println(line)
					line = ""
					col = 0
				}
			}
			if line != "" {
				output.Println(line)
			}

			output.Println()
			output.Printf("  %s high profit   %s profit   %s loss   %s heavy loss\n",
				output.Green("■"), output.Green("□"), output.Red("□"), output.Red("■"))

			days := app.Engine.ByCalendarDay(trades, year, month)
			var monthPL float64
			tradeCount := 0
			for _, b := range days {
				monthPL += b.NetPL
				tradeCount += b.Count
			}
			output.Printf("  %d trades on %d days, net %s\n",
				tradeCount, len(days), output.FormatPnL(monthPL))
			return nil
		},
	}

	cmd.Flags().Int("offset", 0, "Month offset from the current month")
	rootCmd.AddCommand(cmd)
}

func renderDayCell(output *Output, cell analytics.DayCell) string {
	if cell.Day == 0 {
		return "   "
	}
	label := fmt.Sprintf("%3d", cell.Day)
	switch cell.Tier {
	case analytics.TierProfitHigh:
		return output.ColoredString(ColorGreen+ColorBold, label)
	case analytics.TierProfitLow:
		return output.Green(label)
	case analytics.TierLossHigh:
		return output.ColoredString(ColorRed+ColorBold, label)
	case analytics.TierLossLow:
		return output.Red(label)
	default:
		return output.DimText(label)
	}
}
