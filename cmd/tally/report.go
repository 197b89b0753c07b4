package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Suvadipmandal/tally/internal/cli"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate reports over recorded transactions",
	}

	cmd.AddCommand(summaryReportCmd())
	cmd.AddCommand(monthlyReportCmd())

	return cmd
}

func summaryReportCmd() *cobra.Command {
	var (
		fromStr string
		toStr   string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Totals, net balance and spending by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			rng, err := parseDateRange(fromStr, toStr)
			if err != nil {
				return err
			}

			repo, cleanup, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			income := repo.TotalIncome(ctx, rng)
			expenses := repo.TotalExpenses(ctx, rng)
			net := repo.NetBalance(ctx, rng)

			fmt.Println(cli.TitleStyle.Render("Summary"))
			fmt.Printf("  Income:   %s\n", income)
			fmt.Printf("  Expenses: %s\n", expenses)
			if net < 0 {
				fmt.Printf("  Net:      %s\n", cli.ErrorStyle.Render(net.String()))
			} else {
				fmt.Printf("  Net:      %s\n", net)
			}

			spending := repo.SpendingByCategory(ctx, rng)
			if len(spending) == 0 {
				return nil
			}

			categories := make([]string, 0, len(spending))
			for cat := range spending {
				categories = append(categories, cat)
			}
			sort.Slice(categories, func(i, j int) bool {
				return spending[categories[i]] > spending[categories[j]]
			})

			fmt.Println(cli.TitleStyle.Render("Spending by category"))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()
			for _, cat := range categories {
				fmt.Fprintf(w, "  %s\t%s\n", cat, spending[cat])
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "range start (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&toStr, "to", "", "range end (YYYY-MM-DD, inclusive)")
	return cmd
}

func monthlyReportCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Income and expenses per calendar month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, cleanup, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			series := repo.MonthlySeries(ctx, year)

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Monthly series %d", year)))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Month"),
				cli.HeaderStyle.Render("Income"),
				cli.HeaderStyle.Render("Expenses"),
				cli.HeaderStyle.Render("Net"))

			for _, point := range series {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					point.Month, point.Income, point.Expenses, point.Income-point.Expenses)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "calendar year to report")
	return cmd
}
