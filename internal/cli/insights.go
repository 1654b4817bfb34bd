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

// addInsightsCommand adds the behavioral insights command.
func addInsightsCommand(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "insights",
		Short: "Behavioral insights from your trade history",
		Long: `Analyze the journal for behavioral patterns: strategy edge, recurring
losing trades, entry discipline, emotional exit bias, setup quality, and
session performance.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			trades, err := app.Store.GetTrades(ctx, store.TradeFilter{})
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			insights := app.Engine.ComposeInsights(trades)

			if output.IsJSON() {
				return output.JSON(insights)
			}

			output.Bold("Insights")
			output.Println()

			for _, ins := range insights {
				label := formatTone(output, ins.Tone)
				output.Printf("%s %s\n", label, output.BoldText(ins.Title))
				output.Printf("    %s\n\n", ins.Body)
			}
			return nil
		},
	})
}

func formatTone(output *Output, tone analytics.Tone) string {
	switch tone {
	case analytics.ToneGood:
		return output.Green("[+]")
	case analytics.ToneWarning:
		return output.Yellow("[!]")
	default:
		return output.Cyan("[i]")
	}
}
