// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradejournal/internal/analytics"
	"tradejournal/internal/logging"
	"tradejournal/internal/store"
)

// addReportCommands adds performance report commands.
func addReportCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Performance reports",
		Long:  "Generate weekly, monthly, strategy, emotion, and rule adherence reports.",
	}

	cmd.AddCommand(newReportWeeklyCmd(app))
	cmd.AddCommand(newReportMonthlyCmd(app))
	cmd.AddCommand(newReportStrategyCmd(app))
	cmd.AddCommand(newReportWeekdayCmd(app))
	cmd.AddCommand(newReportEmotionCmd(app))
	cmd.AddCommand(newReportRulesCmd(app))

	rootCmd.AddCommand(cmd)
}

func printStats(output *Output, stats analytics.Stats) {
	output.Printf("  Total Trades: %d\n", stats.TotalTrades)
	output.Printf("  Total P&L:    %s\n", output.FormatPnL(stats.TotalPL))
	output.Printf("  Win Rate:     %d%%\n", stats.WinRate)
	output.Printf("  Best Trade:   %s\n", FormatIndianCurrency(stats.BestTrade))
	output.Printf("  Worst Trade:  %s\n", FormatIndianCurrency(stats.WorstTrade))
	output.Printf("  Avg R:R:      %s\n", stats.AvgRR)
}

func newReportWeeklyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "weekly",
		Short: "Report on the last seven days",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			started := time.Now()
			trades, err := app.Store.GetTrades(ctx, store.TradeFilter{})
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			report := app.Engine.Weekly(trades, time.Now())
			logging.LogReport(app.Logger, "weekly", report.Stats.TotalTrades, time.Since(started))

			if output.IsJSON() {
				return output.JSON(report)
			}

			now := time.Now()
			output.Bold("Weekly Report")
			output.Printf("  %s to %s\n\n", FormatDate(now.AddDate(0, 0, -7)), FormatDate(now))

			if report.Empty {
				output.Info("No trades in the last 7 days.")
				return nil
			}
			printStats(output, report.Stats)
			return nil
		},
	}
}

func newReportMonthlyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "monthly",
		Short: "Report on the current calendar month",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			started := time.Now()
			trades, err := app.Store.GetTrades(ctx, store.TradeFilter{})
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			now := time.Now()
			report := app.Engine.Monthly(trades, now)
			logging.LogReport(app.Logger, "monthly", report.Stats.TotalTrades, time.Since(started))

			if output.IsJSON() {
				return output.JSON(report)
			}

			output.Bold("Monthly Report - %s", now.Format("January 2006"))
			output.Println()

			if report.Empty {
				output.Info("No trades this month.")
				return nil
			}
			printStats(output, report.Stats)
			return nil
		},
	}
}

func newReportStrategyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "strategy",
		Short: "Per-strategy performance breakdown",
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

			rows := app.Engine.ReportByStrategy(trades)

			if output.IsJSON() {
				return output.JSON(rows)
			}

			output.Bold("Strategy Report")
			output.Println()

			if len(rows) == 0 {
				output.Info("No trades with a strategy recorded.")
				return nil
			}

			table := NewTable(output, "Strategy", "Trades", "Win Rate", "Total P&L", "Avg R:R")
			for _, row := range rows {
				table.AddRow(
					row.Strategy,
					fmt.Sprintf("%d", row.Stats.TotalTrades),
					fmt.Sprintf("%d%%", row.Stats.WinRate),
					output.FormatPnL(row.Stats.TotalPL),
					row.Stats.AvgRR,
				)
			}
			table.Render()
			return nil
		},
	}
}

func newReportWeekdayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "weekday",
		Short: "Performance by day of the week",
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

			buckets := app.Engine.ByDayOfWeek(trades)

			if output.IsJSON() {
				byName := make(map[string]analytics.WeekdayBucket, len(buckets))
				for day, b := range buckets {
					byName[day.String()] = b
				}
				return output.JSON(byName)
			}

			output.Bold("Weekday Report")
			output.Println()

			if len(buckets) == 0 {
				output.Info("No trades recorded yet.")
				return nil
			}

			table := NewTable(output, "Day", "Trades", "Wins", "Net P&L")
			for day := time.Sunday; day <= time.Saturday; day++ {
				b, ok := buckets[day]
				if !ok {
					continue
				}
				table.AddRow(
					day.String(),
					fmt.Sprintf("%d", b.Count),
					fmt.Sprintf("%d", b.Wins),
					output.FormatPnL(b.NetPL),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newReportEmotionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "emotion",
		Short: "Profit by pre-trade emotion",
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

			report := app.Engine.ReportByEmotion(trades)

			if output.IsJSON() {
				return output.JSON(report)
			}

			output.Bold("Emotion Report")
			output.Println()

			if report.Empty {
				output.Info("No trades with a pre-trade emotion recorded.")
				return nil
			}

			output.Printf("  Most profitable emotion:  %s (avg %s)\n",
				report.Most, output.FormatPnL(report.MostAvg))
			output.Printf("  Least profitable emotion: %s (avg %s)\n",
				report.Least, output.FormatPnL(report.LeastAvg))
			return nil
		},
	}
}

func newReportRulesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Rule adherence report",
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
			rules, err := app.Store.GetRules(ctx)
			if err != nil {
				output.Error("Failed to fetch rules: %v", err)
				return err
			}

			rows := app.Engine.RuleAdherence(trades, rules)

			if output.IsJSON() {
				return output.JSON(rows)
			}

			output.Bold("Rule Adherence")
			output.Println()

			if len(rows) == 0 {
				output.Info("No rules defined yet.")
				return nil
			}

			table := NewTable(output, "Rule", "Followed", "Adherence")
			for _, row := range rows {
				table.AddRow(
					TruncateString(row.Title, 40),
					fmt.Sprintf("%d/%d", row.Followed, row.Total),
					fmt.Sprintf("%d%%", row.Percent),
				)
			}
			table.Render()
			return nil
		},
	}
}
