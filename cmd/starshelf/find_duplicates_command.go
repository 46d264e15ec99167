package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"starshelf/internal/config"
	"starshelf/internal/duplicates"
	"starshelf/internal/scanstore"
)

func newFindDuplicatesCommand(ctx *commandContext) *cobra.Command {
	var extensionsFlag string
	var outputFlag string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "find-duplicates",
		Short: "Find byte-identical images within each catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyExtensions(cfg, extensionsFlag); err != nil {
				return err
			}
			outputPath, err := config.ExpandPath(outputFlag)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}

			scanner := duplicates.NewScanner(cfg, ctx.logger())
			started := time.Now()
			report, err := scanner.Scan(cmd.Context())
			if err != nil {
				return err
			}
			if err := report.Write(outputPath); err != nil {
				return err
			}

			totalFiles := 0
			for _, group := range report.Groups {
				totalFiles += len(group.Files)
			}
			recordRun(ctx, scanstore.Run{
				Kind:       scanstore.KindDuplicateScan,
				StartedAt:  started,
				FinishedAt: time.Now(),
				Groups:     len(report.Groups),
				Files:      totalFiles,
				OutputPath: outputPath,
			})

			if jsonOut {
				return writeJSON(cmd, report)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Duplicate groups: %d\n", len(report.Groups))
			fmt.Fprintf(out, "Duplicate files: %d\n", totalFiles)
			if len(report.Uncertain) > 0 {
				fmt.Fprintf(out, "Unconfirmed groups: %d\n", len(report.Uncertain))
			}
			fmt.Fprintf(out, "Report written to %s and %s\n", outputPath, duplicates.JSONPath(outputPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&extensionsFlag, "extensions", "", "Comma-separated extension allow-list override")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Report destination path")
	_ = cmd.MarkFlagRequired("output")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the report as JSON")
	return cmd
}
