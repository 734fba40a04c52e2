package cli

import (
	"errors"
	"fmt"

	"github.com/cardinalkit/surveybuilder/internal/cli/formatter"
	"github.com/cardinalkit/surveybuilder/internal/repository"
	"github.com/cardinalkit/surveybuilder/internal/service"
	"github.com/spf13/cobra"
)

func newDraftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Inspect or discard the locally saved draft",
	}
	cmd.AddCommand(newDraftShowCmd(app), newDraftClearCmd(app))
	return cmd
}

func newDraftShowCmd(app *App) *cobra.Command {
	var tree bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)
			out := cmd.OutOrStdout()

			summary, err := app.Drafts.Summary(ctx)
			if errors.Is(err, service.ErrNoDraft) || errors.Is(err, repository.ErrNotFound) {
				fmt.Fprint(out, formatter.FormatDraftSummary(nil))
				return nil
			}
			if err != nil {
				return fmt.Errorf("reading draft summary: %w", err)
			}
			fmt.Fprint(out, formatter.FormatDraftSummary(summary))

			if !tree {
				return nil
			}
			d, err := app.Drafts.Load(ctx)
			if err != nil {
				return fmt.Errorf("loading draft: %w", err)
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatItemTree(d))
			return nil
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "also print the question tree")
	return cmd
}

func newDraftClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Drafts.Clear(cmdContext(cmd)); err != nil {
				return fmt.Errorf("clearing draft: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Draft cleared."))
			return nil
		},
	}
}
