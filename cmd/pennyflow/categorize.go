package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/engine"
	"github.com/pennyflow/pennyflow/internal/model"
)

func categorizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categorize <transaction-id> <category-id>",
		Short: "Assign a category, optionally propagating to matching transactions",
		Long: `Assign a category to a transaction. With --scope pattern or --scope all
the same category is applied to every other transaction of the same kind
that matches the source's merchant/description pattern.`,
		Args: cobra.ExactArgs(2),
		RunE: runCategorize,
	}

	cmd.Flags().StringP("scope", "s", "single", "propagation scope (single, pattern, all)")
	cmd.Flags().Bool("apply-to-future", false, "emit a standing rule for future imports")

	return cmd
}

func runCategorize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	scope, _ := cmd.Flags().GetString("scope")
	applyToFuture, _ := cmd.Flags().GetBool("apply-to-future")

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	eng := engine.New(store, store)
	result, err := eng.Categorize(ctx, model.CategorizeCommand{
		TransactionID: args[0],
		CategoryID:    args[1],
		Scope:         model.CategorizationScope(scope),
		ApplyToFuture: applyToFuture,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s Categorized %s\n",
		cli.SuccessStyle.Render(cli.IconSuccess),
		cli.BoldStyle.Render(result.Transaction.MerchantName))
	fmt.Printf("  %d transaction(s) affected\n", result.AppliedCount)

	for _, s := range result.Suggestions {
		fmt.Printf("  %s %s\n", cli.SubtleStyle.Render(cli.IconBullet),
			cli.SubtleStyle.Render(fmt.Sprintf("%d more like %q (scope %s)", s.MatchCount, s.PatternLabel, s.Scope)))
	}

	if result.CreatedRule != nil {
		fmt.Printf("  %s rule recorded for %q\n",
			cli.SubtleStyle.Render(cli.IconBullet), result.CreatedRule.MerchantPattern)
	}

	return nil
}
