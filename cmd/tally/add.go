package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Suvadipmandal/tally/internal/cli"
	"github.com/Suvadipmandal/tally/internal/common"
	"github.com/Suvadipmandal/tally/internal/model"
)

func addCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "add <income|expense> <amount> <category> [description]",
		Short: "Record a transaction",
		Long:  `Record an income or expense transaction. The date defaults to today.`,
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			txType := model.TransactionType(args[0])
			if !txType.Valid() {
				return fmt.Errorf("unknown transaction type %q (want income or expense)", args[0])
			}

			amount, err := model.ParseMoney(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			date := model.DateOf(time.Now())
			if dateStr != "" {
				if date, err = model.ParseDate(dateStr); err != nil {
					return err
				}
			}

			description := ""
			if len(args) == 4 {
				description = args[3]
			}

			repo, cleanup, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			txn := &model.Transaction{
				Type:        txType,
				Amount:      amount,
				Category:    args[2],
				Description: description,
				Date:        date,
			}
			if err := repo.SaveTransaction(ctx, txn); err != nil {
				return common.NewUserError("Could not save the transaction. Check the database path and free disk space.", err)
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("✓ Recorded %s of %s in %s (ID: %s)", txType, amount, txn.Category, txn.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "transaction date (YYYY-MM-DD, default today)")
	return cmd
}
