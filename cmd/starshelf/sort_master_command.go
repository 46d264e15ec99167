package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"starshelf/internal/router"
	"starshelf/internal/scanstore"
)

func newSortMasterCommand(ctx *commandContext) *cobra.Command {
	var extensionsFlag string
	var dryRun bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "sort-master",
		Short: "File master intake images into catalog folders by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyExtensions(cfg, extensionsFlag); err != nil {
				return err
			}

			r := router.NewRouter(cfg, ctx.logger())
			r.DryRun = dryRun

			started := time.Now()
			result, err := r.Route(cmd.Context())
			if errors.Is(err, router.ErrNoMasterDir) {
				fmt.Fprintln(cmd.OutOrStdout(), "No master image folder configured.")
				return nil
			}
			if err != nil {
				return err
			}

			if !dryRun {
				recordRun(ctx, scanstore.Run{
					Kind:       scanstore.KindSortMaster,
					StartedAt:  started,
					FinishedAt: time.Now(),
					Moved:      result.Moved,
					Skipped:    result.Skipped,
				})
			}

			if jsonOut {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintln(out, "Dry run: no files were moved.")
				for _, move := range result.Moves {
					fmt.Fprintf(out, "  %s -> %s\n", move.Source, move.Destination)
				}
				fmt.Fprintf(out, "Would move %d file(s). Skipped %d file(s).\n", result.Planned, result.Skipped)
				return nil
			}
			fmt.Fprintf(out, "Moved %d file(s). Skipped %d file(s).\n", result.Moved, result.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&extensionsFlag, "extensions", "", "Comma-separated extension allow-list override")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Plan moves without touching files")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the result as JSON")
	return cmd
}
