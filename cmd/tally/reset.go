package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Suvadipmandal/tally/internal/cli"
	"github.com/Suvadipmandal/tally/internal/common"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all data and reseed default categories",
		Long: `Reset erases every transaction, budget and the category lists, then
reseeds the default categories. This cannot be undone.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, cleanup, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			count := len(repo.Transactions(ctx))
			budgets := len(repo.Budgets(ctx))

			if !force {
				prompt := fmt.Sprintf("This will delete %d transactions and %d budgets.\nAre you sure you want to continue?", count, budgets)
				if !confirm(prompt) {
					fmt.Println(cli.WarningStyle.Render("Reset canceled."))
					return nil
				}
			}

			if err := repo.ResetAll(ctx); err != nil {
				return common.NewUserError("Could not reset the database. It may be partially erased.", err)
			}

			fmt.Println(cli.SuccessStyle.Render("✓ All data erased, default categories reseeded"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}
