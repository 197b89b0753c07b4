package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Suvadipmandal/tally/internal/cli"
	"github.com/Suvadipmandal/tally/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage transaction categories",
		Long:  `Display the category lists or replace the list for a type.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(setCategoriesCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories by type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, cleanup, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			set := repo.Categories(ctx)

			fmt.Println(cli.TitleStyle.Render("Expense categories"))
			for _, name := range set.Expense {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println(cli.TitleStyle.Render("Income categories"))
			for _, name := range set.Income {
				fmt.Printf("  %s\n", name)
			}

			return nil
		},
	}
}

func setCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <income|expense> <name,name,...>",
		Short: "Replace the category list for a type",
		Long: `Replace the whole category list for one type. The other type's list is
left unchanged. Order is preserved as given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			txType := model.TransactionType(args[0])
			if !txType.Valid() {
				return fmt.Errorf("unknown transaction type %q (want income or expense)", args[0])
			}

			var names []string
			for _, name := range strings.Split(args[1], ",") {
				if name = strings.TrimSpace(name); name != "" {
					names = append(names, name)
				}
			}
			if len(names) == 0 {
				return fmt.Errorf("category list cannot be empty")
			}

			repo, cleanup, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			set := repo.Categories(ctx)
			switch txType {
			case model.TypeExpense:
				set.Expense = names
			case model.TypeIncome:
				set.Income = names
			}

			if err := repo.SaveCategories(ctx, set); err != nil {
				return fmt.Errorf("failed to save categories: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("✓ Replaced %s categories (%d entries)", txType, len(names))))
			return nil
		},
	}
}
