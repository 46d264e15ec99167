package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"starshelf/internal/config"
	"starshelf/internal/faults"
	"starshelf/internal/logging"
	"starshelf/internal/objectid"
)

// ErrNoMasterDir reports that routing has nowhere to read from. Callers
// treat it as a no-op rather than a failure.
var ErrNoMasterDir = errors.New("no master image directory configured")

// Move records one planned or performed relocation.
type Move struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Catalog     string `json:"catalog"`
}

// Result summarizes one routing run. Moved counts files actually relocated;
// under dry-run nothing moves and Planned counts the moves that would happen.
type Result struct {
	Moved   int    `json:"moved"`
	Planned int    `json:"planned,omitempty"`
	Skipped int    `json:"skipped"`
	Moves   []Move `json:"moves"`
}

// Router moves intake files into catalog folders.
type Router struct {
	cfg    *config.Config
	logger *slog.Logger

	// DryRun plans moves without touching the filesystem.
	DryRun bool
}

// NewRouter constructs a router over the configured catalogs.
func NewRouter(cfg *config.Config, logger *slog.Logger) *Router {
	return &Router{
		cfg:    cfg,
		logger: logging.WithComponent(logger, "router"),
	}
}

// Route walks the master directory and files every image whose name carries
// a catalog id into that catalog's first configured directory. Files that
// match no catalog, already sit in their destination, or fail to move are
// counted as skipped. The walk checks ctx between files.
func (r *Router) Route(ctx context.Context) (*Result, error) {
	masterDir := strings.TrimSpace(r.cfg.MasterImageDir)
	if masterDir == "" {
		return nil, ErrNoMasterDir
	}
	if _, err := os.Stat(masterDir); err != nil {
		return nil, ErrNoMasterDir
	}

	targets := r.targetDirs()
	result := &Result{Moves: []Move{}}

	files := collectFiles(masterDir, r.cfg.ImageExtensions)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.routeFile(path, targets, result)
	}

	r.logger.Info("routing finished",
		logging.Int("moved", result.Moved),
		logging.Int("planned", result.Planned),
		logging.Int("skipped", result.Skipped),
		logging.Bool("dry_run", r.DryRun),
	)
	return result, nil
}

// targetDirs maps each standard catalog to its first configured image
// directory. Catalogs without directories are absent and route as skips.
func (r *Router) targetDirs() map[string]string {
	targets := make(map[string]string)
	for _, catalogCfg := range r.cfg.Catalogs {
		if len(catalogCfg.ImageDirs) == 0 {
			continue
		}
		for _, standard := range config.StandardCatalogNames {
			if strings.EqualFold(catalogCfg.Name, standard) {
				targets[standard] = catalogCfg.ImageDirs[0]
				break
			}
		}
	}
	return targets
}

func (r *Router) routeFile(path string, targets map[string]string, result *Result) {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	catalogName, ok := objectid.PickCatalog(objectid.Extract(stem))
	if !ok {
		result.Skipped++
		return
	}
	targetDir, ok := targets[catalogName]
	if !ok {
		result.Skipped++
		return
	}
	if sameDir(filepath.Dir(path), targetDir) {
		result.Skipped++
		return
	}

	if !r.DryRun {
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			r.logger.Warn("target directory unavailable",
				logging.String("dir", targetDir),
				logging.Error(err),
			)
			result.Skipped++
			return
		}
	}

	destination := collisionFreePath(targetDir, name)
	if !r.DryRun {
		if err := moveFile(path, destination); err != nil {
			r.logger.Warn("move failed",
				logging.String("source", path),
				logging.Error(err),
			)
			result.Skipped++
			return
		}
	}

	if r.DryRun {
		result.Planned++
	} else {
		result.Moved++
	}
	result.Moves = append(result.Moves, Move{
		Source:      path,
		Destination: destination,
		Catalog:     catalogName,
	})
	r.logger.Debug("file routed",
		logging.String("source", path),
		logging.String("destination", destination),
		logging.String("catalog", catalogName),
	)
}

func sameDir(a, b string) bool {
	ra, errA := filepath.EvalSymlinks(a)
	rb, errB := filepath.EvalSymlinks(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ra == rb
}

// collisionFreePath appends -1, -2, ... to the stem until the name is free
// at the destination.
func collisionFreePath(dir, name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	candidate := filepath.Join(dir, name)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(candidate); errors.Is(err, fs.ErrNotExist) {
			return candidate
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s-%d%s", stem, counter, ext))
	}
}

// moveFile renames, falling back to copy-and-remove when the destination
// lives on another filesystem.
func moveFile(source, destination string) error {
	if err := os.Rename(source, destination); err == nil {
		return nil
	}
	if err := copyFile(source, destination); err != nil {
		return err
	}
	return os.Remove(source)
}

func copyFile(source, destination string) error {
	in, err := os.Open(source)
	if err != nil {
		return faults.Wrap(faults.ErrFilesystem, "router", "copy", "open source", err)
	}
	defer in.Close()

	// O_EXCL keeps the never-overwrite guarantee even if the destination
	// appeared after the collision check.
	out, err := os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return faults.Wrap(faults.ErrFilesystem, "router", "copy", "create destination", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(destination)
		return faults.Wrap(faults.ErrFilesystem, "router", "copy", "copy contents", err)
	}
	return out.Close()
}

// collectFiles walks the intake directory for files on the extension
// allow-list.
func collectFiles(root string, extensions []string) []string {
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	var files []string
	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		if _, ok := allowed[strings.ToLower(filepath.Ext(entry.Name()))]; ok {
			files = append(files, path)
		}
		return nil
	})
	return files
}
