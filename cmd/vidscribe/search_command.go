package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vidscribe/internal/config"
	"vidscribe/internal/store"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Substring search across the archive",
	}

	searchCmd.AddCommand(newSearchCaptionsCommand(ctx))
	searchCmd.AddCommand(newSearchThumbsCommand(ctx))

	return searchCmd
}

func newSearchCaptionsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "captions <term>",
		Short: "Search caption text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				hits, err := st.SearchCaptions(cmd.Context(), term)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(hits) == 0 {
					fmt.Fprintln(out, "No matches")
					return nil
				}

				rows := make([][]string, 0, len(hits))
				for _, hit := range hits {
					rows = append(rows, []string{
						hit.Title,
						formatSeconds(hit.StartTime),
						truncateText(hit.Text, textColumnWidth),
						hit.VideoID,
					})
				}
				fmt.Fprint(out, renderTable(
					[]string{"Title", "Start", "Caption", "Video"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}

func newSearchThumbsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "thumbs <term>",
		Short: "Search thumbnail descriptions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				hits, err := st.SearchThumbnailText(cmd.Context(), term)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(hits) == 0 {
					fmt.Fprintln(out, "No matches")
					return nil
				}

				rows := make([][]string, 0, len(hits))
				for _, hit := range hits {
					rows = append(rows, []string{
						hit.Title,
						hit.UploadDate.Format("2006-01-02"),
						truncateText(hit.ThumbnailText, textColumnWidth),
						hit.VideoID,
					})
				}
				fmt.Fprint(out, renderTable(
					[]string{"Title", "Uploaded", "Thumbnail Text", "Video"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}
