package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vidscribe/internal/config"
	"vidscribe/internal/export"
	"vidscribe/internal/store"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the full transcript corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				writer := cmd.OutOrStdout()
				if outPath != "" {
					expanded, err := config.ExpandPath(outPath)
					if err != nil {
						return err
					}
					file, err := os.Create(expanded)
					if err != nil {
						return fmt.Errorf("create export file: %w", err)
					}
					defer file.Close()
					writer = file
				}

				if err := export.WriteTranscript(cmd.Context(), st, writer); err != nil {
					return err
				}
				if outPath != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Wrote transcript to %s\n", outPath)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the transcript to a file instead of stdout")
	return cmd
}
