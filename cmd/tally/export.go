package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Suvadipmandal/tally/internal/cli"
	"github.com/Suvadipmandal/tally/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export ledger data",
		Long: `Export all collections as a JSON snapshot, or just the transactions as
CSV with the columns date, description, category, type, amount.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, cleanup, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var w io.Writer = os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			switch format {
			case "json":
				snap := repo.ExportAll(ctx)
				if err := export.WriteSnapshot(w, snap); err != nil {
					return err
				}
			case "csv":
				if err := export.WriteTransactionsCSV(w, repo.Transactions(ctx)); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (want json or csv)", format)
			}

			if output != "" {
				fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Exported to %s", output)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "export format (json, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
