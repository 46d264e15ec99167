package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"starshelf/internal/faults"
)

//go:embed sample_config.toml
var sampleConfig string

// Catalog describes one configured catalog: its display name, the metadata
// JSON file backing it, and the image directories scanned for captures.
type Catalog struct {
	Name         string   `toml:"name"`
	MetadataFile string   `toml:"metadata_file"`
	ImageDirs    []string `toml:"image_dirs"`
}

// Observer holds the observing site used for best-month computation.
type Observer struct {
	Latitude   float64 `toml:"latitude"`
	Longitude  float64 `toml:"longitude"`
	ElevationM float64 `toml:"elevation_m"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for starshelf.
type Config struct {
	Catalogs        []Catalog `toml:"catalogs"`
	ImageExtensions []string  `toml:"image_extensions"`
	MasterImageDir  string    `toml:"master_image_dir"`
	StateDir        string    `toml:"state_dir"`
	Observer        Observer  `toml:"observer"`
	Logging         Logging   `toml:"logging"`
}

// SampleConfig returns the embedded annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

// ExpandPath resolves a leading ~ and returns an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// DefaultConfigPath returns the absolute path of the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/starshelf/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. When path is empty and
// no file exists at the default locations the defaults are returned with
// exists=false; a non-empty path that names a missing file is an error.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			// An explicitly named file that is absent is an error; only
			// the default search locations fall back to built-in defaults.
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, faults.Wrap(faults.ErrConfig, "config", "open", expanded, err)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("starshelf.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// Validate checks invariants that normalization cannot repair.
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Catalogs))
	for _, catalog := range c.Catalogs {
		name := strings.TrimSpace(catalog.Name)
		if name == "" {
			return errors.New("catalogs: name must not be empty")
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("catalogs: duplicate catalog %q", name)
		}
		seen[key] = struct{}{}
	}
	if len(c.ImageExtensions) == 0 {
		return errors.New("image_extensions: at least one extension is required")
	}
	if c.Observer.Latitude < -90 || c.Observer.Latitude > 90 {
		return fmt.Errorf("observer.latitude: %v outside [-90, 90]", c.Observer.Latitude)
	}
	if c.Observer.Longitude < -180 || c.Observer.Longitude > 180 {
		return fmt.Errorf("observer.longitude: %v outside [-180, 180]", c.Observer.Longitude)
	}
	return nil
}

// CatalogByName returns the configured catalog with the given name,
// case-insensitively.
func (c *Config) CatalogByName(name string) (Catalog, bool) {
	for _, catalog := range c.Catalogs {
		if strings.EqualFold(catalog.Name, name) {
			return catalog, true
		}
	}
	return Catalog{}, false
}

// EnsureStateDir creates the state directory used for the scan-history
// database and lock files.
func (c *Config) EnsureStateDir() error {
	if strings.TrimSpace(c.StateDir) == "" {
		return errors.New("state_dir is empty")
	}
	if err := os.MkdirAll(c.StateDir, 0o755); err != nil {
		return fmt.Errorf("create state directory %q: %w", c.StateDir, err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
