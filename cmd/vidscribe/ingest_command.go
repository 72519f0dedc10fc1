package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidscribe/internal/config"
	"vidscribe/internal/ingest"
	"vidscribe/internal/store"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <snapshot.json>",
		Short: "Load a video and caption snapshot into the archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			snapshot, err := ingest.LoadFile(args[0])
			if err != nil {
				return err
			}

			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				result, err := ingest.Apply(cmd.Context(), st, snapshot, logger)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Ingested %d video(s) and %d caption(s)\n", result.Videos, result.Captions)
				return nil
			})
		},
	}
}
