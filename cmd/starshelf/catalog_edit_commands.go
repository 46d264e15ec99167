package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"starshelf/internal/catalog"
	"starshelf/internal/metadata"
)

func newCatalogTypesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the object types present across all catalogs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(ctx)
			if err != nil {
				return err
			}
			for _, objectType := range catalog.CollectObjectTypes(records) {
				fmt.Fprintln(cmd.OutOrStdout(), objectType)
			}
			return nil
		},
	}
}

func newCatalogSetNoteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set-note <object-id> <note>",
		Short: "Save free-text notes on an object (empty note clears)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, store, err := resolveEditTarget(ctx, args[0])
			if err != nil {
				return err
			}
			note := strings.Join(args[1:], " ")
			if err := store.SaveNote(record.Catalog, record.ObjectID, note); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved note for %s\n", record.ObjectID)
			return nil
		},
	}
}

func newCatalogSetImageNoteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set-image-note <object-id> <image-name> <note>",
		Short: "Save a note on one of an object's images (empty note clears)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, store, err := resolveEditTarget(ctx, args[0])
			if err != nil {
				return err
			}
			note := strings.Join(args[2:], " ")
			if err := store.SaveImageNote(record.Catalog, record.ObjectID, args[1], note); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved image note for %s\n", record.ObjectID)
			return nil
		},
	}
}

func newCatalogSetThumbnailCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set-thumbnail <object-id> <image-name>",
		Short: "Choose the thumbnail image for an object",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, store, err := resolveEditTarget(ctx, args[0])
			if err != nil {
				return err
			}
			if err := store.SaveThumbnail(record.Catalog, record.ObjectID, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved thumbnail for %s\n", record.ObjectID)
			return nil
		},
	}
}

// resolveEditTarget locates the record for an object id and opens the store
// for its catalog's metadata file. Image-only records get a metadata entry
// created on first edit.
func resolveEditTarget(ctx *commandContext, objectIDArg string) (catalog.Record, *metadata.Store, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return catalog.Record{}, nil, err
	}
	records := catalog.NewLoader(cfg, ctx.logger()).Load()

	objectID := strings.ToUpper(strings.TrimSpace(objectIDArg))
	for _, record := range records {
		if strings.ToUpper(record.ObjectID) != objectID {
			continue
		}
		catalogCfg, ok := cfg.CatalogByName(record.Catalog)
		if !ok {
			continue
		}
		return record, metadata.NewStore(catalogCfg.MetadataFile), nil
	}
	return catalog.Record{}, nil, fmt.Errorf("no record for %s", objectID)
}
