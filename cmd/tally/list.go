package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Suvadipmandal/tally/internal/cli"
	"github.com/Suvadipmandal/tally/internal/model"
)

func listCmd() *cobra.Command {
	var (
		fromStr     string
		toStr       string
		categoryStr string
		typeStr     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded transactions",
		Long:  `Display transactions, optionally filtered by date range, category or type.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, cleanup, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rng, err := parseDateRange(fromStr, toStr)
			if err != nil {
				return err
			}

			var txns []model.Transaction
			switch {
			case rng != nil:
				txns = repo.TransactionsByDateRange(ctx, rng.Start, rng.End)
			case categoryStr != "":
				txns = repo.TransactionsByCategory(ctx, categoryStr)
			case typeStr != "":
				txType := model.TransactionType(typeStr)
				if !txType.Valid() {
					return fmt.Errorf("unknown transaction type %q (want income or expense)", typeStr)
				}
				txns = repo.TransactionsByType(ctx, txType)
			default:
				txns = repo.Transactions(ctx)
			}

			if len(txns) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found. Use 'tally add' to record one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Description"))

			for _, t := range txns {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					t.ID, t.Date, t.Type, t.Category, t.Amount, t.Description)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "range start (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&toStr, "to", "", "range end (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&categoryStr, "category", "", "filter by category")
	cmd.Flags().StringVar(&typeStr, "type", "", "filter by type (income, expense)")
	return cmd
}
