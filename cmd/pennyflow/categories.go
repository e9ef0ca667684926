package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage spending categories",
	}

	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())

	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer func() { _ = store.Close() }()

			categories, err := store.GetCategories(ctx)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render("Categories"))
			if len(categories) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No categories defined yet."))
				return nil
			}
			for _, cat := range categories {
				fmt.Printf("%s %s %s %s\n",
					cli.SubtleStyle.Render(cli.IconBullet),
					cli.BoldStyle.Render(cat.Name),
					cli.SubtleStyle.Render(string(cat.Kind)),
					cli.SubtleStyle.Render(cat.ID))
			}
			return nil
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kind, _ := cmd.Flags().GetString("kind")
			if !model.ValidCategoryKind(model.CategoryKind(kind)) {
				return fmt.Errorf("invalid category kind %q", kind)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer func() { _ = store.Close() }()

			cat := &model.Category{
				ID:   uuid.NewString(),
				Name: args[0],
				Kind: model.CategoryKind(kind),
			}
			if err := store.CreateCategory(ctx, cat); err != nil {
				return err
			}

			fmt.Printf("%s Created category %s (%s)\n",
				cli.SuccessStyle.Render(cli.IconSuccess), cli.BoldStyle.Render(cat.Name), cat.ID)
			return nil
		},
	}

	cmd.Flags().StringP("kind", "k", "discretionary",
		"category kind (income, essential, discretionary, investment, debt-payment, no-compute)")

	return cmd
}
