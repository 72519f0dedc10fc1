package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"vidscribe/internal/config"
	"vidscribe/internal/corrections"
	"vidscribe/internal/store"
)

func newApplyCommand(ctx *commandContext) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "apply <batch.json> [batch.json...]",
		Short: "Apply thumbnail-text correction batches",
		Long: `Apply one or more correction batch files to the archive, in argument
order. Each batch is validated before any write; when batches disagree about
a video the most recently applied value wins.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				applier := corrections.NewApplier(cfg, st, logger)
				out := cmd.OutOrStdout()

				for _, path := range args {
					batch, err := corrections.Load(path)
					if err != nil {
						return err
					}
					result, err := applier.Apply(cmd.Context(), batch)
					if err != nil {
						return err
					}

					fmt.Fprintf(out, "Batch %s (run %s)\n", result.Batch, result.RunID)
					fmt.Fprint(out, renderTable(
						[]string{"Outcome", "Count"},
						[][]string{
							{"updated", formatCount(result.Updated)},
							{"already correct", formatCount(result.AlreadyCorrect)},
							{"not found", formatCount(result.NotFound)},
							{"no thumbnail", formatCount(result.NoThumbnail)},
						},
						[]columnAlignment{alignLeft, alignRight},
					))
					if verbose {
						printItemLog(cmd, result)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the per-item outcome log")
	return cmd
}

func printItemLog(cmd *cobra.Command, result *corrections.Result) {
	rows := make([][]string, 0, len(result.Items))
	for _, item := range result.Items {
		rows = append(rows, []string{
			item.VideoID,
			string(item.Outcome),
			truncateText(item.Previous, textColumnWidth),
			truncateText(item.Applied, textColumnWidth),
		})
	}
	fmt.Fprint(cmd.OutOrStdout(), renderTable(
		[]string{"Video", "Outcome", "Previous", "Applied"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
	))
}

func newClearCommand(ctx *commandContext) *cobra.Command {
	var pattern string
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Retract thumbnail text matching a pattern",
		Long: `Null out thumbnail text on every row whose current value matches the
given SQL LIKE pattern. Used to withdraw bad machine-generated guesses before
re-applying curated batches.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pattern == "" {
				return errors.New("--like pattern is required")
			}
			if !force {
				return errors.New("clear is destructive; re-run with --force to proceed")
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				applier := corrections.NewApplier(cfg, st, logger)
				cleared, err := applier.ClearMatching(cmd.Context(), pattern)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared thumbnail text on %d video(s)\n", cleared)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&pattern, "like", "", "SQL LIKE pattern the current text must match")
	cmd.Flags().BoolVar(&force, "force", false, "Confirm the bulk clear")
	return cmd
}
