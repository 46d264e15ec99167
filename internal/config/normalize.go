package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.mergeStandardCatalogs()
	if err := c.normalizeCatalogs(); err != nil {
		return err
	}
	if err := c.normalizeMaster(); err != nil {
		return err
	}
	if err := c.normalizeState(); err != nil {
		return err
	}
	c.normalizeExtensions()
	c.normalizeLogging()
	return nil
}

// mergeStandardCatalogs guarantees the four standard catalogs exist in
// declared order. User entries override the defaults by name; any additional
// catalogs are appended after the standard set in their configured order.
func (c *Config) mergeStandardCatalogs() {
	configured := make(map[string]Catalog, len(c.Catalogs))
	for _, catalog := range c.Catalogs {
		name := strings.TrimSpace(catalog.Name)
		if name == "" {
			continue
		}
		configured[strings.ToLower(name)] = catalog
	}

	merged := make([]Catalog, 0, len(c.Catalogs)+len(StandardCatalogNames))
	taken := make(map[string]struct{}, len(StandardCatalogNames))
	for _, def := range defaultCatalogs() {
		key := strings.ToLower(def.Name)
		taken[key] = struct{}{}
		if user, ok := configured[key]; ok {
			if strings.TrimSpace(user.MetadataFile) == "" {
				user.MetadataFile = def.MetadataFile
			}
			user.Name = def.Name
			merged = append(merged, user)
			continue
		}
		merged = append(merged, def)
	}
	for _, catalog := range c.Catalogs {
		key := strings.ToLower(strings.TrimSpace(catalog.Name))
		if key == "" {
			continue
		}
		if _, ok := taken[key]; ok {
			continue
		}
		taken[key] = struct{}{}
		merged = append(merged, catalog)
	}
	c.Catalogs = merged
}

// normalizeCatalogs expands every path and drops image directories that do
// not exist; when none of a catalog's configured directories exist the raw
// list is kept so a temporarily unmounted volume is not forgotten.
func (c *Config) normalizeCatalogs() error {
	for i := range c.Catalogs {
		catalog := &c.Catalogs[i]
		if strings.TrimSpace(catalog.MetadataFile) != "" {
			expanded, err := expandPath(catalog.MetadataFile)
			if err != nil {
				return fmt.Errorf("catalogs.%s.metadata_file: %w", catalog.Name, err)
			}
			catalog.MetadataFile = expanded
		}

		dirs := make([]string, 0, len(catalog.ImageDirs))
		for _, dir := range catalog.ImageDirs {
			if strings.TrimSpace(dir) == "" {
				continue
			}
			expanded, err := expandPath(dir)
			if err != nil {
				return fmt.Errorf("catalogs.%s.image_dirs: %w", catalog.Name, err)
			}
			dirs = append(dirs, expanded)
		}
		existing := dirs[:0:0]
		for _, dir := range dirs {
			if info, err := os.Stat(dir); err == nil && info.IsDir() {
				existing = append(existing, dir)
			}
		}
		if len(existing) > 0 {
			catalog.ImageDirs = existing
		} else {
			catalog.ImageDirs = dirs
		}
	}
	return nil
}

// normalizeMaster clears a master directory that does not exist so batch
// tools can distinguish "unconfigured" from "configured but missing".
func (c *Config) normalizeMaster() error {
	master := strings.TrimSpace(c.MasterImageDir)
	if master == "" {
		c.MasterImageDir = ""
		return nil
	}
	expanded, err := expandPath(master)
	if err != nil {
		return fmt.Errorf("master_image_dir: %w", err)
	}
	if info, statErr := os.Stat(expanded); statErr != nil || !info.IsDir() {
		c.MasterImageDir = ""
		return nil
	}
	c.MasterImageDir = expanded
	return nil
}

func (c *Config) normalizeState() error {
	if strings.TrimSpace(c.StateDir) == "" {
		c.StateDir = defaultStateDir
	}
	expanded, err := expandPath(c.StateDir)
	if err != nil {
		return fmt.Errorf("state_dir: %w", err)
	}
	c.StateDir = expanded
	return nil
}

func (c *Config) normalizeExtensions() {
	if len(c.ImageExtensions) == 0 {
		c.ImageExtensions = defaultImageExtensions()
	}
	normalized := make([]string, 0, len(c.ImageExtensions))
	seen := make(map[string]struct{}, len(c.ImageExtensions))
	for _, ext := range c.ImageExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, dup := seen[ext]; dup {
			continue
		}
		seen[ext] = struct{}{}
		normalized = append(normalized, ext)
	}
	c.ImageExtensions = normalized
}

func (c *Config) normalizeLogging() {
	if strings.TrimSpace(c.Logging.Format) == "" {
		c.Logging.Format = defaultLogFormat
	}
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = defaultLogLevel
	}
}
