// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradejournal/internal/logging"
	"tradejournal/internal/models"
	"tradejournal/internal/store"
)

// addTradeCommands adds trade record commands.
func addTradeCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Trade record management",
		Long:  "Record and review closed trades with their psychological context.",
	}

	cmd.AddCommand(newTradeAddCmd(app))
	cmd.AddCommand(newTradeListCmd(app))
	cmd.AddCommand(newTradeShowCmd(app))
	cmd.AddCommand(newTradeDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

func newTradeAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <symbol>",
		Short: "Record a closed trade",
		Long: `Record a completed trade in the journal.

Gross and net P&L and the planned risk-reward ratio are derived once from
the prices given here and stored with the trade.`,
		Example: `  journal trade add RELIANCE --direction Long --qty 50 --entry 2440 --exit 2465
  journal trade add TCS --direction Short --qty 20 --entry 3900 --exit 3850 \
      --stop-loss 3950 --target 3800 --strategy Breakout --fomo 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			direction, _ := cmd.Flags().GetString("direction")
			qty, _ := cmd.Flags().GetFloat64("qty")
			entry, _ := cmd.Flags().GetFloat64("entry")
			exit, _ := cmd.Flags().GetFloat64("exit")
			stopLoss, _ := cmd.Flags().GetFloat64("stop-loss")
			target, _ := cmd.Flags().GetFloat64("target")
			strategy, _ := cmd.Flags().GetString("strategy")
			dateStr, _ := cmd.Flags().GetString("date")
			confidence, _ := cmd.Flags().GetInt("confidence")
			preEmotion, _ := cmd.Flags().GetString("pre-emotion")
			postEmotion, _ := cmd.Flags().GetString("post-emotion")
			exitEmotion, _ := cmd.Flags().GetString("exit-emotion")
			exitReason, _ := cmd.Flags().GetString("exit-reason")
			sleep, _ := cmd.Flags().GetInt("sleep")
			fomo, _ := cmd.Flags().GetInt("fomo")
			preStress, _ := cmd.Flags().GetInt("pre-stress")
			stressDuring, _ := cmd.Flags().GetInt("stress-during")
			confluence, _ := cmd.Flags().GetStringSlice("confluence")
			followedRules, _ := cmd.Flags().GetStringSlice("followed-rules")
			waited, _ := cmd.Flags().GetBool("waited")
			takeAgain, _ := cmd.Flags().GetString("take-again")
			session, _ := cmd.Flags().GetString("session")
			notes, _ := cmd.Flags().GetString("notes")
			lesson, _ := cmd.Flags().GetString("lesson")

			if qty <= 0 {
				output.Error("Quantity must be positive.")
				return fmt.Errorf("invalid quantity: %v", qty)
			}
			if direction != string(models.DirectionLong) && direction != string(models.DirectionShort) {
				output.Error("Direction must be Long or Short.")
				return fmt.Errorf("invalid direction: %s", direction)
			}

			entryDate := time.Now()
			if dateStr != "" {
				parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
				if err != nil {
					output.Error("Invalid date %q, expected YYYY-MM-DD.", dateStr)
					return err
				}
				entryDate = parsed
			}

			waitedAnswer := models.EnteredEarly
			if waited {
				waitedAnswer = models.WaitedYes
			}

			trade := &models.Trade{
				Symbol:              args[0],
				Direction:           models.Direction(direction),
				Quantity:            qty,
				EntryPrice:          entry,
				ExitPrice:           exit,
				StopLoss:            stopLoss,
				TargetPrice:         target,
				Strategy:            strategy,
				EntryDate:           entryDate,
				ExitDate:            entryDate,
				ConfidenceLevel:     confidence,
				PreEmotion:          preEmotion,
				PostEmotion:         postEmotion,
				ExitEmotion:         exitEmotion,
				PrimaryExitReason:   exitReason,
				SleepQuality:        sleep,
				FomoLevel:           fomo,
				PreStress:           preStress,
				StressDuring:        stressDuring,
				TechnicalConfluence: confluence,
				FollowedRules:       followedRules,
				WaitedForSetup:      waitedAnswer,
				WouldTakeAgain:      takeAgain,
				MarketSession:       session,
				Notes:               notes,
				Lesson:              lesson,
			}
			trade.ComputeDerived(app.Config.Journal.Commission)

			if err := app.Store.SaveTrade(ctx, trade); err != nil {
				output.Error("Failed to save trade: %v", err)
				return err
			}

			logging.LogTradeSaved(app.Logger, trade.ID, trade.Symbol, trade.Strategy, trade.NetPL)

			if output.IsJSON() {
				return output.JSON(trade)
			}

			output.Success("✓ Trade recorded: %s", trade.ID)
			output.Printf("  %s %s x %.0f @ %s → %s\n",
				trade.Symbol, trade.Direction, trade.Quantity,
				FormatPrice(trade.EntryPrice), FormatPrice(trade.ExitPrice))
			output.Printf("  Net P&L: %s\n", output.FormatPnL(trade.NetPL))
			if trade.RiskRewardRatio > 0 {
				output.Printf("  Planned R:R: %s\n", FormatRiskReward(trade.RiskRewardRatio))
			}
			return nil
		},
	}

	cmd.Flags().String("direction", "Long", "Trade direction (Long or Short)")
	cmd.Flags().Float64("qty", 0, "Quantity traded")
	cmd.Flags().Float64("entry", 0, "Entry price")
	cmd.Flags().Float64("exit", 0, "Exit price")
	cmd.Flags().Float64("stop-loss", 0, "Planned stop-loss price")
	cmd.Flags().Float64("target", 0, "Planned target price")
	cmd.Flags().String("strategy", "", "Strategy name")
	cmd.Flags().String("date", "", "Entry date (YYYY-MM-DD, default today)")
	cmd.Flags().Int("confidence", 5, "Pre-trade confidence (1-10)")
	cmd.Flags().String("pre-emotion", "", "Emotion before entry")
	cmd.Flags().String("post-emotion", "", "Emotion after exit")
	cmd.Flags().String("exit-emotion", "", "Emotion at exit")
	cmd.Flags().String("exit-reason", "", "Primary exit reason")
	cmd.Flags().Int("sleep", 0, "Sleep quality (1-10)")
	cmd.Flags().Int("fomo", 0, "FOMO level (1-10)")
	cmd.Flags().Int("pre-stress", 0, "Stress before entry (1-10)")
	cmd.Flags().Int("stress-during", 0, "Stress during the trade (1-10)")
	cmd.Flags().StringSlice("confluence", nil, "Technical confluence tags")
	cmd.Flags().StringSlice("followed-rules", nil, "Rule titles followed on this trade")
	cmd.Flags().Bool("waited", true, "Whether you waited for the setup")
	cmd.Flags().String("take-again", "", "Would you take this trade again")
	cmd.Flags().String("session", "", "Market session (e.g. \"Market Open (9:30-10:30)\")")
	cmd.Flags().String("notes", "", "Free-form notes")
	cmd.Flags().String("lesson", "", "Lesson learned")
	cmd.MarkFlagRequired("qty")
	cmd.MarkFlagRequired("entry")
	cmd.MarkFlagRequired("exit")

	return cmd
}

func newTradeListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded trades",
		Example: `  journal trade list
  journal trade list --symbol RELIANCE --limit 20
  journal trade list --strategy Breakout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			symbol, _ := cmd.Flags().GetString("symbol")
			strategy, _ := cmd.Flags().GetString("strategy")
			limit, _ := cmd.Flags().GetInt("limit")

			trades, err := app.Store.GetTrades(ctx, store.TradeFilter{
				Symbol:   symbol,
				Strategy: strategy,
				Limit:    limit,
			})
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(trades)
			}

			if len(trades) == 0 {
				output.Info("No trades recorded yet.")
				return nil
			}

			table := NewTable(output, "Date", "ID", "Symbol", "Dir", "Qty", "Entry", "Exit", "Net P&L", "Strategy")
			for _, t := range trades {
				table.AddRow(
					FormatDate(t.EntryDate),
					TruncateString(t.ID, 14),
					t.Symbol,
					string(t.Direction),
					fmt.Sprintf("%.0f", t.Quantity),
					FormatPrice(t.EntryPrice),
					FormatPrice(t.ExitPrice),
					output.FormatPnL(t.NetPL),
					TruncateString(t.Strategy, 15),
				)
			}
			table.Render()
			output.Println()
			output.Dim("%d trades", len(trades))
			return nil
		},
	}

	cmd.Flags().String("symbol", "", "Filter by symbol")
	cmd.Flags().String("strategy", "", "Filter by strategy")
	cmd.Flags().Int("limit", 50, "Maximum trades to show")

	return cmd
}

func newTradeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <trade-id>",
		Short: "Show one trade in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			trade, err := app.Store.GetTrade(ctx, args[0])
			if err != nil {
				output.Error("Failed to fetch trade: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(trade)
			}

			output.Bold("Trade %s", trade.ID)
			output.Println()
			output.Printf("  Symbol:      %s (%s)\n", trade.Symbol, trade.Direction)
			output.Printf("  Date:        %s\n", FormatDate(trade.EntryDate))
			output.Printf("  Quantity:    %.0f\n", trade.Quantity)
			output.Printf("  Entry/Exit:  %s → %s\n", FormatPrice(trade.EntryPrice), FormatPrice(trade.ExitPrice))
			if trade.StopLoss > 0 {
				output.Printf("  Stop Loss:   %s\n", FormatPrice(trade.StopLoss))
			}
			if trade.TargetPrice > 0 {
				output.Printf("  Target:      %s\n", FormatPrice(trade.TargetPrice))
			}
			output.Printf("  Strategy:    %s\n", trade.Strategy)
			output.Printf("  Gross P&L:   %s\n", output.FormatPnL(trade.GrossPL))
			output.Printf("  Net P&L:     %s\n", output.FormatPnL(trade.NetPL))
			if trade.RiskRewardRatio > 0 {
				output.Printf("  Planned R:R: %s\n", FormatRiskReward(trade.RiskRewardRatio))
			}
			output.Println()

			output.Bold("Psychology")
			output.Printf("  Confidence:  %d/10\n", trade.ConfidenceLevel)
			if trade.PreEmotion != "" {
				output.Printf("  Pre:         %s\n", trade.PreEmotion)
			}
			if trade.ExitEmotion != "" {
				output.Printf("  At exit:     %s\n", trade.ExitEmotion)
			}
			if trade.PrimaryExitReason != "" {
				output.Printf("  Exit reason: %s\n", trade.PrimaryExitReason)
			}
			if trade.FomoLevel > 0 {
				output.Printf("  FOMO:        %d/10\n", trade.FomoLevel)
			}
			output.Printf("  Setup:       %s\n", trade.WaitedForSetup)
			if len(trade.TechnicalConfluence) > 0 {
				output.Printf("  Confluence:  %v\n", trade.TechnicalConfluence)
			}
			if len(trade.FollowedRules) > 0 {
				output.Printf("  Rules:       %v\n", trade.FollowedRules)
			}
			if trade.MarketSession != "" {
				output.Printf("  Session:     %s\n", trade.MarketSession)
			}
			if trade.Notes != "" {
				output.Println()
				output.Bold("Notes")
				output.Printf("  %s\n", trade.Notes)
			}
			if trade.Lesson != "" {
				output.Println()
				output.Bold("Lesson")
				output.Printf("  %s\n", trade.Lesson)
			}
			return nil
		},
	}
}

func newTradeDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <trade-id>",
		Short: "Delete a trade record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			if err := app.Store.DeleteTrade(ctx, args[0]); err != nil {
				output.Error("Failed to delete trade: %v", err)
				return err
			}

			output.Success("✓ Trade %s deleted", args[0])
			return nil
		},
	}
}
