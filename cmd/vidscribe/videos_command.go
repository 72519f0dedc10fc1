package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidscribe/internal/config"
	"vidscribe/internal/store"
)

func newVideosCommand(ctx *commandContext) *cobra.Command {
	var withThumbnail bool
	var withText bool
	var missingText bool

	cmd := &cobra.Command{
		Use:   "videos",
		Short: "List archived videos",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				filter := store.VideoFilter{
					HasThumbnail: withThumbnail,
					HasText:      withText,
					MissingText:  missingText,
				}
				videos, err := st.ListVideos(cmd.Context(), filter)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(videos) == 0 {
					fmt.Fprintln(out, "No videos match")
					return nil
				}

				rows := make([][]string, 0, len(videos))
				for _, video := range videos {
					rows = append(rows, []string{
						video.ID,
						video.Title,
						video.UploadDate.Format("2006-01-02"),
						yesNo(video.ThumbnailURL != ""),
						truncateText(video.ThumbnailText, textColumnWidth),
					})
				}
				fmt.Fprint(out, renderTable(
					[]string{"Video", "Title", "Uploaded", "Thumb", "Thumbnail Text"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&withThumbnail, "with-thumbnail", false, "Only videos that have a thumbnail")
	cmd.Flags().BoolVar(&withText, "with-text", false, "Only videos with thumbnail text")
	cmd.Flags().BoolVar(&missingText, "missing-text", false, "Only thumbnailed videos still lacking text")
	return cmd
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
