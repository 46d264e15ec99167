package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"starshelf/internal/config"
	"starshelf/internal/logging"
	"starshelf/internal/scanstore"
)

// writeJSON encodes v as indented JSON to the command's stdout. HTML escaping
// is off so object names, notes, and catalog links print as typed.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// applyExtensions replaces the config's extension allow-list with the
// comma-separated override, normalized the same way the config loader does
// it. An empty override keeps the configured list.
func applyExtensions(cfg *config.Config, csv string) error {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return nil
	}
	var extensions []string
	for _, raw := range strings.Split(csv, ",") {
		ext := strings.ToLower(strings.TrimSpace(raw))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions = append(extensions, ext)
	}
	if len(extensions) == 0 {
		return fmt.Errorf("no usable extensions in %q", csv)
	}
	cfg.ImageExtensions = extensions
	return nil
}

// recordRun stores the run in the history database. History is best-effort:
// failures are logged and swallowed so a broken state dir never fails the
// batch itself.
func recordRun(c *commandContext, run scanstore.Run) {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		return
	}
	logger := logging.WithComponent(c.logger(), "history")

	store, err := scanstore.Open(cfg)
	if err != nil {
		logger.Warn("history unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Record(ctx, run); err != nil {
		logger.Warn("record run", logging.Error(err))
	}
}
