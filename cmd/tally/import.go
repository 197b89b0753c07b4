package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Suvadipmandal/tally/internal/cli"
	"github.com/Suvadipmandal/tally/internal/common"
	"github.com/Suvadipmandal/tally/internal/export"
)

func importCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON snapshot",
		Long: `Replace stored collections with the contents of a snapshot file.
Collections absent from the snapshot are left untouched. The collection
writes are independent; a failure partway through leaves earlier
collections imported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return common.NewUserError(fmt.Sprintf("Could not open snapshot file %s.", args[0]), err)
			}
			defer func() { _ = f.Close() }()

			snap, err := export.ReadSnapshot(f)
			if err != nil {
				return err
			}

			if !force {
				prompt := fmt.Sprintf("Import %d transactions and %d budgets, replacing stored data?",
					len(snap.Transactions), len(snap.Budgets))
				if !confirm(prompt) {
					fmt.Println(cli.WarningStyle.Render("Import canceled."))
					return nil
				}
			}

			repo, cleanup, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := repo.ImportAll(ctx, snap); err != nil {
				return fmt.Errorf("import incomplete: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Snapshot imported"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}
