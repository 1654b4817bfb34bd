// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// addJournalCommands adds daily confidence and note commands.
func addJournalCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newConfidenceCmd(app))
	rootCmd.AddCommand(newNoteCmd(app))
}

// parseDayFlag reads the --date flag, defaulting to today.
func parseDayFlag(cmd *cobra.Command) (time.Time, error) {
	dateStr, _ := cmd.Flags().GetString("date")
	if dateStr == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01-02", dateStr, time.Local)
}

func newConfidenceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confidence",
		Short: "Daily confidence tracking",
		Long:  "Record and review your self-rated confidence, one entry per day.",
	}

	setCmd := &cobra.Command{
		Use:   "set <level>",
		Short: "Set today's confidence level (1-10)",
		Example: `  journal confidence set 7
  journal confidence set 4 --date 2024-03-12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			var level int
			if _, err := fmt.Sscanf(args[0], "%d", &level); err != nil {
				output.Error("Level must be a number between 1 and 10.")
				return err
			}

			date, err := parseDayFlag(cmd)
			if err != nil {
				output.Error("Invalid date, expected YYYY-MM-DD.")
				return err
			}

			if err := app.Store.SetConfidence(ctx, date, level); err != nil {
				output.Error("Failed to save confidence: %v", err)
				return err
			}

			output.Success("✓ Confidence for %s set to %d/10", FormatDate(date), level)
			return nil
		},
	}
	setCmd.Flags().String("date", "", "Date (YYYY-MM-DD, default today)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List confidence entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			days, _ := cmd.Flags().GetInt("days")
			from := time.Time{}
			if days > 0 {
				from = time.Now().AddDate(0, 0, -days)
			}

			entries, err := app.Store.GetConfidence(ctx, from, time.Time{})
			if err != nil {
				output.Error("Failed to fetch confidence entries: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(entries)
			}

			if len(entries) == 0 {
				output.Info("No confidence entries recorded.")
				return nil
			}

			var sum int
			table := NewTable(output, "Date", "Level")
			for _, e := range entries {
				sum += e.Level
				bar := strings.Repeat("█", e.Level) + strings.Repeat("░", 10-e.Level)
				table.AddRow(FormatDate(e.Date), fmt.Sprintf("%2d  %s", e.Level, bar))
			}
			table.Render()
			output.Println()
			output.Printf("  Average: %.1f/10 over %d days\n", float64(sum)/float64(len(entries)), len(entries))
			return nil
		},
	}
	listCmd.Flags().Int("days", 0, "Only show the last N days")

	cmd.AddCommand(setCmd)
	cmd.AddCommand(listCmd)
	return cmd
}

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Daily journal notes",
		Long:  "Keep one free-text note per day. Writing again replaces the day's note.",
	}

	setCmd := &cobra.Command{
		Use:   "set <content>",
		Short: "Write today's note",
		Example: `  journal note set "Choppy session, stayed mostly flat."
  journal note set "Forced a trade after lunch." --date 2024-03-12`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			date, err := parseDayFlag(cmd)
			if err != nil {
				output.Error("Invalid date, expected YYYY-MM-DD.")
				return err
			}

			content := strings.Join(args, " ")
			if err := app.Store.SetNote(ctx, date, content); err != nil {
				output.Error("Failed to save note: %v", err)
				return err
			}

			output.Success("✓ Note saved for %s", FormatDate(date))
			return nil
		},
	}
	setCmd.Flags().String("date", "", "Date (YYYY-MM-DD, default today)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List journal notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			days, _ := cmd.Flags().GetInt("days")
			from := time.Time{}
			if days > 0 {
				from = time.Now().AddDate(0, 0, -days)
			}

			notes, err := app.Store.GetNotes(ctx, from, time.Time{})
			if err != nil {
				output.Error("Failed to fetch notes: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(notes)
			}

			if len(notes) == 0 {
				output.Info("No notes recorded.")
				return nil
			}

			for _, n := range notes {
				output.Bold(FormatDate(n.Date))
				output.Printf("  %s\n\n", n.Content)
			}
			return nil
		},
	}
	listCmd.Flags().Int("days", 0, "Only show the last N days")

	cmd.AddCommand(setCmd)
	cmd.AddCommand(listCmd)
	return cmd
}
