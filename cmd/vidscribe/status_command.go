package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidscribe/internal/classify"
	"vidscribe/internal/config"
	"vidscribe/internal/report"
	"vidscribe/internal/store"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show archive coverage summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				rules := classify.DefaultRules(cfg.Classify.GenericPatterns)
				status, err := report.Gather(cmd.Context(), st, rules, 0)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				rows := [][]string{
					{"Videos", formatCount(status.Videos)},
					{"With thumbnail", formatCount(status.WithThumbnail)},
					{"With thumbnail text", formatCount(status.WithText)},
					{"Captions", formatCount(status.Captions)},
					{"Thumbnails processed", formatPercent(status.PercentProcessed)},
				}
				fmt.Fprint(out, renderTable(
					[]string{"Metric", "Value"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))

				if status.Classification.Total > 0 {
					classRows := make([][]string, 0, len(status.Classification.Counts))
					for _, category := range []classify.Category{classify.CategorySpecific, classify.CategoryGeneric, classify.CategoryNoText} {
						count, ok := status.Classification.Counts[category]
						if !ok {
							continue
						}
						classRows = append(classRows, []string{
							string(category),
							formatCount(count),
							formatPercent(status.Classification.Percent[category]),
						})
					}
					fmt.Fprint(out, renderTable(
						[]string{"Category", "Count", "Share"},
						classRows,
						[]columnAlignment{alignLeft, alignRight, alignRight},
					))
				}
				return nil
			})
		},
	}
}
