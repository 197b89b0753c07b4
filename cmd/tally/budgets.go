package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Suvadipmandal/tally/internal/cli"
	"github.com/Suvadipmandal/tally/internal/model"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage per-category budgets",
		Long:  `Set, list and delete budgets and compare them against actual spending.`,
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(deleteBudgetCmd())
	cmd.AddCommand(budgetStatusCmd())

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, cleanup, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			budgets := repo.Budgets(ctx)
			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets found. Use 'tally budgets set' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Period"),
				cli.HeaderStyle.Render("Start"))

			for _, b := range budgets {
				start := b.StartDate.String()
				if b.Period == model.PeriodMonthly {
					start = cli.SubtleStyle.Render("(current month)")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", b.ID, b.Category, b.Amount, b.Period, start)
			}

			return nil
		},
	}
}

func setBudgetCmd() *cobra.Command {
	var (
		periodStr string
		startStr  string
	)

	cmd := &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Create or update a budget for a category",
		Long: `Set the spending ceiling for a category. If a budget already exists for
the category it is updated in place; otherwise a new one is created.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			category := args[0]

			amount, err := model.ParseMoney(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			period := model.BudgetPeriod(periodStr)
			if !period.Valid() {
				return fmt.Errorf("unknown period %q (want monthly or annual)", periodStr)
			}

			start := model.DateOf(time.Now())
			if startStr != "" {
				if start, err = model.ParseDate(startStr); err != nil {
					return err
				}
			}

			repo, cleanup, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			budget := &model.Budget{
				Category:  category,
				Amount:    amount,
				Period:    period,
				StartDate: start,
			}
			if existing, err := repo.BudgetByCategory(ctx, category); err == nil {
				budget.ID = existing.ID
				budget.CreatedAt = existing.CreatedAt
			}

			if err := repo.SaveBudget(ctx, budget); err != nil {
				return fmt.Errorf("failed to save budget: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("✓ Budget for %s set to %s (%s)", category, amount, period)))
			return nil
		},
	}

	cmd.Flags().StringVar(&periodStr, "period", "monthly", "budget period (monthly, annual)")
	cmd.Flags().StringVar(&startStr, "start", "", "start date for annual budgets (YYYY-MM-DD, default today)")
	return cmd
}

func deleteBudgetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			repo, cleanup, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !force && !confirm(fmt.Sprintf("Delete budget %s?", id)) {
				fmt.Println(cli.WarningStyle.Render("Delete canceled."))
				return nil
			}

			if err := repo.DeleteBudget(ctx, id); err != nil {
				return fmt.Errorf("failed to delete budget: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Deleted budget %s", id)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}

func budgetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Compare budgets against actual spending",
		Long: `Show each budget with actual spending in its window: the current calendar
month for monthly budgets, one year from the start date for annual ones.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, cleanup, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			statuses := repo.BudgetVsActual(ctx)
			if len(statuses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets found. Use 'tally budgets set' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Period"),
				cli.HeaderStyle.Render("Budgeted"),
				cli.HeaderStyle.Render("Actual"),
				cli.HeaderStyle.Render("Remaining"),
				cli.HeaderStyle.Render("Used"))

			for _, s := range statuses {
				used := "n/a"
				if !math.IsInf(s.Percentage, 0) && !math.IsNaN(s.Percentage) {
					used = fmt.Sprintf("%.1f%%", s.Percentage)
				}

				remaining := s.Remaining.String()
				if s.Remaining < 0 {
					remaining = cli.ErrorStyle.Render(remaining)
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					s.Category, s.Period, s.Budgeted, s.Actual, remaining, used)
			}

			return nil
		},
	}
}
