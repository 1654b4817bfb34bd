// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradejournal/internal/models"
)

// addRuleCommands adds trading rule commands.
func addRuleCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Trading rule management",
		Long: `Maintain your personal trading rules.

Rule titles are the keys that trades reference in their followed-rules set,
so renaming a rule does not retroactively change past trades.`,
	}

	cmd.AddCommand(newRuleAddCmd(app))
	cmd.AddCommand(newRuleEditCmd(app))
	cmd.AddCommand(newRuleDeleteCmd(app))
	cmd.AddCommand(newRuleListCmd(app))

	rootCmd.AddCommand(cmd)
}

func newRuleAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a trading rule",
		Example: `  journal rule add "Wait for confirmation candle"
  journal rule add "Max 2 trades per day" --description "Stop after two trades, win or lose."`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			description, _ := cmd.Flags().GetString("description")
			rule := &models.Rule{
				Title:       args[0],
				Description: description,
			}

			if err := app.Store.SaveRule(ctx, rule); err != nil {
				output.Error("Failed to save rule: %v", err)
				return err
			}

			output.Success("✓ Rule added: %s", rule.ID)
			return nil
		},
	}
	cmd.Flags().String("description", "", "Longer description of the rule")
	return cmd
}

func newRuleEditCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <rule-id>",
		Short: "Edit a trading rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			title, _ := cmd.Flags().GetString("title")
			description, _ := cmd.Flags().GetString("description")

			// Start from the stored rule so unset flags keep their values.
			rules, err := app.Store.GetRules(ctx)
			if err != nil {
				output.Error("Failed to fetch rules: %v", err)
				return err
			}
			var current *models.Rule
			for i := range rules {
				if rules[i].ID == args[0] {
					current = &rules[i]
					break
				}
			}
			if current == nil {
				output.Error("Rule %s not found.", args[0])
				return fmt.Errorf("rule not found: %s", args[0])
			}

			if title != "" {
				current.Title = title
			}
			if cmd.Flags().Changed("description") {
				current.Description = description
			}

			if err := app.Store.UpdateRule(ctx, current); err != nil {
				output.Error("Failed to update rule: %v", err)
				return err
			}

			output.Success("✓ Rule updated")
			return nil
		},
	}
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	return cmd
}

func newRuleDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <rule-id>",
		Short: "Delete a trading rule",
		Long: `Delete a rule from the rule list.

Past trades that reference the rule keep its title in their followed-rules
set, so historical adherence stays intact.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			if err := app.Store.DeleteRule(ctx, args[0]); err != nil {
				output.Error("Failed to delete rule: %v", err)
				return err
			}

			output.Success("✓ Rule %s deleted", args[0])
			return nil
		},
	}
}

func newRuleListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List trading rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			rules, err := app.Store.GetRules(ctx)
			if err != nil {
				output.Error("Failed to fetch rules: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(rules)
			}

			if len(rules) == 0 {
				output.Info("No rules defined yet.")
				output.Dim("Tip: add one with 'journal rule add \"...\"'.")
				return nil
			}

			table := NewTable(output, "ID", "Title", "Description", "Added")
			for _, r := range rules {
				table.AddRow(
					TruncateString(r.ID, 16),
					r.Title,
					TruncateString(r.Description, 40),
					FormatDate(r.CreatedAt),
				)
			}
			table.Render()
			return nil
		},
	}
}
