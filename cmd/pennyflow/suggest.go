package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/common"
	"github.com/pennyflow/pennyflow/internal/engine"
	"github.com/pennyflow/pennyflow/internal/pattern"
)

func suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <transaction-id>",
		Short: "Show apply-to-similar suggestions for a transaction",
		Long: `Show whether categorizing this transaction could be propagated to other
matching transactions, plus keyword-based category hints and, with
--fuzzy, merchants that look like spelling variants of the same payee.`,
		Args: cobra.ExactArgs(1),
		RunE: runSuggest,
	}

	cmd.Flags().Bool("fuzzy", false, "also list fuzzy merchant variants")
	cmd.Flags().Float64("similarity-threshold", pattern.DefaultSimilarityThreshold, "fuzzy variant cutoff in (0,1]")
	_ = viper.BindPFlag("matching.similarity_threshold", cmd.Flags().Lookup("similarity-threshold"))

	return cmd
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	eng := engine.New(store, store)
	suggestions, err := eng.GetSuggestions(ctx, args[0])
	if err != nil {
		return err
	}

	txn, err := store.FindByID(ctx, args[0])
	if err != nil {
		return err
	}
	if txn == nil {
		return &common.NotFoundError{Entity: "transaction", ID: args[0]}
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Suggestions for %s", txn.MerchantName)))

	if len(suggestions) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No similar transactions found."))
	}
	for _, s := range suggestions {
		fmt.Printf("%s %d transaction(s) match pattern %q (%d already share its category)\n",
			cli.SuccessStyle.Render(cli.IconBullet), s.MatchCount, s.PatternLabel, s.SameCategoryCount)
	}

	if hints := pattern.CategoryHints(txn.MerchantName + " " + txn.Description); len(hints) > 0 {
		fmt.Printf("%s keyword hints: %s\n",
			cli.SubtleStyle.Render(cli.IconBullet), strings.Join(hints, ", "))
	}

	if fuzzy, _ := cmd.Flags().GetBool("fuzzy"); fuzzy {
		threshold := viper.GetFloat64("matching.similarity_threshold")
		if threshold == 0 {
			threshold = pattern.DefaultSimilarityThreshold
		}
		collection, err := store.FindAll(ctx)
		if err != nil {
			return err
		}
		variants := pattern.FuzzyVariants(*txn, collection, threshold)
		seen := make(map[string]bool)
		for _, v := range variants {
			if seen[v.MerchantName] {
				continue
			}
			seen[v.MerchantName] = true
			fmt.Printf("%s possible variant: %s\n",
				cli.WarningStyle.Render(cli.IconWarning), v.MerchantName)
		}
	}

	return nil
}
