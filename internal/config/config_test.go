package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"starshelf/internal/config"
	"starshelf/internal/faults"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for explicitly named missing file")
	} else if !errors.Is(err, faults.ErrConfig) {
		t.Fatalf("expected a configuration error, got %v", err)
	}
}

func TestLoadDefaultSearchFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	// t.Chdir requires Go 1.24; this toolchain is 1.21, so do the equivalent.
	origWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origWD); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})

	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false when no default location has a file")
	}
	if len(cfg.Catalogs) != 4 {
		t.Fatalf("expected 4 default catalogs, got %d", len(cfg.Catalogs))
	}
	for i, name := range config.StandardCatalogNames {
		if cfg.Catalogs[i].Name != name {
			t.Fatalf("catalog %d = %q, want %q", i, cfg.Catalogs[i].Name, name)
		}
	}
}

func TestLoadMergesUserCatalogWithDefaults(t *testing.T) {
	dir := t.TempDir()
	imageDir := filepath.Join(dir, "messier-images")
	if err := os.MkdirAll(imageDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := writeConfig(t, `
[[catalogs]]
name = "messier"
image_dirs = ["`+imageDir+`"]

[[catalogs]]
name = "Solar system"
metadata_file = "`+filepath.Join(dir, "solar_metadata.json")+`"
`)

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Catalogs) != 5 {
		t.Fatalf("expected 4 standard + 1 custom catalogs, got %d", len(cfg.Catalogs))
	}
	messier := cfg.Catalogs[0]
	if messier.Name != config.CatalogMessier {
		t.Fatalf("first catalog %q, want canonical Messier", messier.Name)
	}
	if len(messier.ImageDirs) != 1 || messier.ImageDirs[0] != imageDir {
		t.Fatalf("messier image dirs %v, want [%s]", messier.ImageDirs, imageDir)
	}
	if messier.MetadataFile == "" {
		t.Fatal("override without metadata_file should inherit the default path")
	}
	if cfg.Catalogs[4].Name != config.CatalogSolarSystem {
		t.Fatalf("custom catalog %q appended last, want Solar system", cfg.Catalogs[4].Name)
	}
}

func TestNormalizeDropsMissingImageDirs(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present")
	if err := os.MkdirAll(present, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	absent := filepath.Join(dir, "absent")
	path := writeConfig(t, `
[[catalogs]]
name = "NGC"
image_dirs = ["`+present+`", "`+absent+`"]
`)

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ngc, ok := cfg.CatalogByName("ngc")
	if !ok {
		t.Fatal("NGC catalog not found")
	}
	if len(ngc.ImageDirs) != 1 || ngc.ImageDirs[0] != present {
		t.Fatalf("image dirs %v, want only %s", ngc.ImageDirs, present)
	}
}

func TestNormalizeClearsMissingMasterDir(t *testing.T) {
	path := writeConfig(t, `master_image_dir = "`+filepath.Join(t.TempDir(), "nope")+`"`)
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MasterImageDir != "" {
		t.Fatalf("missing master dir should be cleared, got %q", cfg.MasterImageDir)
	}
}

func TestExtensionsNormalized(t *testing.T) {
	path := writeConfig(t, `image_extensions = ["JPG", ".png", "png", " .TIF "]`)
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{".jpg", ".png", ".tif"}
	if len(cfg.ImageExtensions) != len(want) {
		t.Fatalf("extensions %v, want %v", cfg.ImageExtensions, want)
	}
	for i, ext := range want {
		if cfg.ImageExtensions[i] != ext {
			t.Fatalf("extensions %v, want %v", cfg.ImageExtensions, want)
		}
	}
}

func TestValidateRejectsBadObserver(t *testing.T) {
	path := writeConfig(t, `
[observer]
latitude = 99.0
`)
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected latitude validation error")
	} else if !strings.Contains(err.Error(), "observer.latitude") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestDuplicateCatalogNamesCollapse(t *testing.T) {
	path := writeConfig(t, `
[[catalogs]]
name = "Custom"

[[catalogs]]
name = "custom"
metadata_file = "/tmp/custom.json"
`)
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	count := 0
	for _, catalog := range cfg.Catalogs {
		if strings.EqualFold(catalog.Name, "custom") {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected duplicate names to collapse to one entry, got %d", count)
	}
}

func TestSampleConfigParses(t *testing.T) {
	path := writeConfig(t, config.SampleConfig())
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
}
