package imageindex

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"starshelf/internal/aliases"
	"starshelf/internal/logging"
	"starshelf/internal/objectid"
)

// Index maps a normalized (upper-cased) object id to an ordered, de-duplicated
// list of image paths.
type Index map[string][]string

// Options describe one index build.
type Options struct {
	// Dirs are the roots to walk. Non-existent entries are skipped.
	Dirs []string
	// Extensions is the lowercase extension allow-list (with leading dots).
	Extensions []string
	// ExpandAliases adds cross-catalog equivalents for every extracted id,
	// so an image named for either number is discoverable from both.
	ExpandAliases bool
	// SolarNames switches extraction to the solar-system variant matcher.
	SolarNames bool

	Logger *slog.Logger
}

// Build walks the configured directories and returns the id index.
func Build(opts Options) Index {
	logger := logging.WithComponent(opts.Logger, "imageindex")

	allowed := make(map[string]struct{}, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	index := make(Index)
	seen := make(map[string]map[string]struct{})

	for _, dir := range opts.Dirs {
		root := dir
		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable or vanished entries are not an indexing error.
				if entry != nil && entry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if entry.IsDir() {
				return nil
			}
			name := entry.Name()
			if _, ok := allowed[strings.ToLower(filepath.Ext(name))]; !ok {
				return nil
			}
			stem := strings.TrimSuffix(name, filepath.Ext(name))
			ids := extractIDs(stem, opts)
			if len(ids) == 0 {
				return nil
			}
			resolved := resolvePath(path)
			for _, id := range ids {
				id = strings.ToUpper(id)
				paths, ok := seen[id]
				if !ok {
					paths = make(map[string]struct{})
					seen[id] = paths
				}
				if _, dup := paths[resolved]; dup {
					continue
				}
				paths[resolved] = struct{}{}
				index[id] = append(index[id], path)
			}
			return nil
		})
		if err != nil {
			logger.Debug("walk aborted", logging.String("dir", root), logging.Error(err))
		}
	}

	for id := range index {
		sortPaths(index[id])
	}
	return index
}

// Lookup returns the paths recorded for id, matching case-insensitively.
func (idx Index) Lookup(id string) []string {
	return idx[strings.ToUpper(strings.TrimSpace(id))]
}

// IDs returns every indexed id in sorted order.
func (idx Index) IDs() []string {
	ids := make([]string, 0, len(idx))
	for id := range idx {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func extractIDs(stem string, opts Options) []string {
	if opts.SolarNames {
		return objectid.ExtractSolar(stem)
	}
	ids := objectid.Extract(stem)
	if opts.ExpandAliases {
		ids = aliases.Expand(ids)
	}
	return ids
}

// resolvePath follows symlinks so two directory aliases of the same physical
// file de-duplicate to one entry.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// sortPaths orders a path list case-insensitively by filename, independent of
// OS enumeration order. Ties keep their first-seen order.
func sortPaths(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		return strings.ToLower(filepath.Base(paths[i])) < strings.ToLower(filepath.Base(paths[j]))
	})
}
