package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidscribe/internal/classify"
	"vidscribe/internal/config"
	"vidscribe/internal/store"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var samples int

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Bucket stored thumbnail text into quality categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				limit := samples
				if !cmd.Flags().Changed("samples") {
					limit = cfg.Classify.SampleLimit
				}

				texts, err := st.ThumbnailTexts(cmd.Context())
				if err != nil {
					return err
				}
				breakdown := classify.Run(texts, classify.DefaultRules(cfg.Classify.GenericPatterns), limit)

				out := cmd.OutOrStdout()
				if breakdown.Total == 0 {
					fmt.Fprintln(out, "No thumbnail text stored yet")
					return nil
				}

				rows := make([][]string, 0, len(breakdown.Counts))
				for _, category := range []classify.Category{classify.CategorySpecific, classify.CategoryGeneric, classify.CategoryNoText} {
					count, ok := breakdown.Counts[category]
					if !ok {
						continue
					}
					rows = append(rows, []string{
						string(category),
						formatCount(count),
						formatPercent(breakdown.Percent[category]),
					})
				}
				fmt.Fprint(out, renderTable(
					[]string{"Category", "Count", "Share"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight},
				))

				if limit > 0 {
					for _, category := range []classify.Category{classify.CategoryGeneric, classify.CategoryNoText, classify.CategorySpecific} {
						sampleRows := breakdown.Samples[category]
						if len(sampleRows) == 0 {
							continue
						}
						fmt.Fprintf(out, "\n%s samples:\n", category)
						for _, sample := range sampleRows {
							fmt.Fprintf(out, "  %s  %s\n", sample.VideoID, truncateText(sample.Text, textColumnWidth))
						}
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&samples, "samples", 0, "Rows to show per category (default from config)")
	return cmd
}
