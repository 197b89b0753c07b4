package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Suvadipmandal/tally/internal/cli"
	"github.com/Suvadipmandal/tally/internal/common"
)

func deleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction by ID. Asks for confirmation unless --force is given.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			repo, cleanup, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			txn, err := repo.TransactionByID(ctx, id)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No transaction with ID %s. Nothing to delete.", id)))
					return nil
				}
				return err
			}

			if !force {
				prompt := fmt.Sprintf("Delete %s of %s in %s dated %s?", txn.Type, txn.Amount, txn.Category, txn.Date)
				if !confirm(prompt) {
					fmt.Println(cli.WarningStyle.Render("Delete canceled."))
					return nil
				}
			}

			if err := repo.DeleteTransaction(ctx, id); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Deleted transaction %s", id)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}
