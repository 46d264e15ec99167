package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"starshelf/internal/catalog"
	"starshelf/internal/objectid"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the reconciled catalog records",
	}

	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	catalogCmd.AddCommand(newCatalogShowCommand(ctx))
	catalogCmd.AddCommand(newCatalogTypesCommand(ctx))
	catalogCmd.AddCommand(newCatalogSetNoteCommand(ctx))
	catalogCmd.AddCommand(newCatalogSetImageNoteCommand(ctx))
	catalogCmd.AddCommand(newCatalogSetThumbnailCommand(ctx))

	return catalogCmd
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var catalogFilter string
	var typeFilter string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog records with image counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(ctx)
			if err != nil {
				return err
			}

			filtered := records[:0]
			for _, record := range records {
				if catalogFilter != "" && !strings.EqualFold(record.Catalog, catalogFilter) {
					continue
				}
				if typeFilter != "" && !strings.EqualFold(record.ObjectType, typeFilter) {
					continue
				}
				filtered = append(filtered, record)
			}

			if jsonOut {
				return writeJSON(cmd, filtered)
			}

			rows := make([][]string, 0, len(filtered))
			for _, record := range filtered {
				rows = append(rows, []string{
					record.Catalog,
					record.ObjectID,
					record.Name,
					record.ObjectType,
					record.BestMonths,
					strconv.Itoa(len(record.ImagePaths)),
				})
			}
			headers := []string{"Catalog", "ID", "Name", "Type", "Best months", "Images"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			fmt.Fprintf(cmd.OutOrStdout(), "%d record(s)\n", len(filtered))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogFilter, "catalog", "", "Only show records from this catalog")
	cmd.Flags().StringVar(&typeFilter, "type", "", "Only show records of this object type")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit records as JSON")
	return cmd
}

func newCatalogShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <object-id>",
		Short: "Show one record in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(ctx)
			if err != nil {
				return err
			}

			objectID := strings.ToUpper(strings.TrimSpace(args[0]))
			var matches []catalog.Record
			for _, record := range records {
				if strings.ToUpper(record.ObjectID) == objectID {
					matches = append(matches, record)
				}
			}
			if len(matches) == 0 {
				if catalogName, ok := objectid.CatalogForID(objectID); ok {
					return fmt.Errorf("no %s record for %s", catalogName, objectID)
				}
				return fmt.Errorf("no record for %s", objectID)
			}

			if jsonOut {
				return writeJSON(cmd, matches)
			}
			out := cmd.OutOrStdout()
			for i, record := range matches {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printRecord(out, record)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the record as JSON")
	return cmd
}

func loadRecords(ctx *commandContext) ([]catalog.Record, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	return catalog.NewLoader(cfg, ctx.logger()).Load(), nil
}

func printRecord(out io.Writer, record catalog.Record) {
	fmt.Fprintf(out, "%s (%s)\n", record.DisplayName(), record.Catalog)
	if record.ObjectType != "" {
		fmt.Fprintf(out, "  Type:          %s\n", record.ObjectType)
	}
	if record.DistanceLY != nil {
		fmt.Fprintf(out, "  Distance:      %.0f ly\n", *record.DistanceLY)
	}
	if record.Discoverer != "" {
		discovery := record.Discoverer
		if record.DiscoveryYear != nil {
			discovery = fmt.Sprintf("%s (%d)", discovery, *record.DiscoveryYear)
		}
		fmt.Fprintf(out, "  Discovered by: %s\n", discovery)
	}
	if record.RAHours != nil && record.DecDeg != nil {
		fmt.Fprintf(out, "  RA/Dec:        %.3fh / %+.2f°\n", *record.RAHours, *record.DecDeg)
	}
	if record.BestMonths != "" {
		fmt.Fprintf(out, "  Best months:   %s\n", record.BestMonths)
	}
	if record.Description != "" {
		fmt.Fprintf(out, "  Description:   %s\n", record.Description)
	}
	if record.Notes != "" {
		fmt.Fprintf(out, "  Notes:         %s\n", record.Notes)
	}
	if record.ExternalLink != "" {
		fmt.Fprintf(out, "  Link:          %s\n", record.ExternalLink)
	}
	fmt.Fprintf(out, "  Images:        %d\n", len(record.ImagePaths))
	for _, path := range record.ImagePaths {
		fmt.Fprintf(out, "    - %s\n", path)
	}
}
