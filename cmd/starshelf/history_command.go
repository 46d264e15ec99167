package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"starshelf/internal/scanstore"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past duplicate scans and routing runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := scanstore.Open(cfg)
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}

			if jsonOut {
				return writeJSON(cmd, runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.StartedAt.Local().Format(time.DateTime),
					run.Kind,
					runSummary(run),
					run.OutputPath,
				})
			}
			headers := []string{"Started", "Kind", "Result", "Output"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to show (0 shows all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit runs as JSON")
	return cmd
}

func runSummary(run scanstore.Run) string {
	switch run.Kind {
	case scanstore.KindSortMaster:
		return "moved " + strconv.Itoa(run.Moved) + ", skipped " + strconv.Itoa(run.Skipped)
	case scanstore.KindDuplicateScan:
		return strconv.Itoa(run.Groups) + " group(s), " + strconv.Itoa(run.Files) + " file(s)"
	default:
		return ""
	}
}
