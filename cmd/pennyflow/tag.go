package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/engine"
	"github.com/pennyflow/pennyflow/internal/model"
)

func tagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag <transaction-id> <tag>",
		Short: "Add a tag, optionally propagating to matching transactions",
		Args:  cobra.ExactArgs(2),
		RunE:  runTag,
	}

	cmd.Flags().StringP("scope", "s", "single", "propagation scope (single, pattern, all)")

	return cmd
}

func runTag(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	scope, _ := cmd.Flags().GetString("scope")

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	eng := engine.New(store, store)
	result, err := eng.Tag(ctx, model.TagCommand{
		TransactionID: args[0],
		Tag:           args[1],
		Scope:         model.CategorizationScope(scope),
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s Tagged %d transaction(s) with %q\n",
		cli.SuccessStyle.Render(cli.IconSuccess), result.AppliedCount, args[1])
	for _, id := range result.AffectedIDs {
		fmt.Printf("  %s %s\n", cli.SubtleStyle.Render(cli.IconBullet), cli.SubtleStyle.Render(id))
	}

	return nil
}
