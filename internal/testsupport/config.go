package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"starshelf/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test:
// every standard catalog gets a metadata path and one image directory under
// the test's temp root, plus a master intake directory and a state
// directory. Options adjust the result.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.StateDir = filepath.Join(base, "state")
	cfgVal.MasterImageDir = filepath.Join(base, "master")
	if err := os.MkdirAll(cfgVal.MasterImageDir, 0o755); err != nil {
		t.Fatalf("mkdir master dir: %v", err)
	}
	for i := range cfgVal.Catalogs {
		slug := strings.ReplaceAll(strings.ToLower(cfgVal.Catalogs[i].Name), " ", "-")
		dir := filepath.Join(base, "images", slug)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir image dir: %v", err)
		}
		cfgVal.Catalogs[i].ImageDirs = []string{dir}
		cfgVal.Catalogs[i].MetadataFile = filepath.Join(base, slug+"_metadata.json")
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithObserver sets the observer location on the test config.
func WithObserver(latitude, longitude float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Observer.Latitude = latitude
		b.cfg.Observer.Longitude = longitude
	}
}

// WithoutMasterDir clears the master intake directory.
func WithoutMasterDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.MasterImageDir = ""
	}
}

// WithExtensions replaces the image extension allow-list.
func WithExtensions(extensions ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.ImageExtensions = extensions
	}
}
