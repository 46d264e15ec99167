package duplicates

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"starshelf/internal/config"
	"starshelf/internal/logging"
	"starshelf/internal/objectid"
)

// Scanner hashes every matching image under the standard catalogs'
// directories and groups identical content.
type Scanner struct {
	cfg    *config.Config
	logger *slog.Logger

	// Workers bounds the hashing pool. Zero means one worker per CPU.
	Workers int
}

// NewScanner constructs a scanner over the configured catalogs.
func NewScanner(cfg *config.Config, logger *slog.Logger) *Scanner {
	return &Scanner{
		cfg:    cfg,
		logger: logging.WithComponent(logger, "duplicates"),
	}
}

// Scan walks each standard catalog's image directories, hashes the files
// concurrently, and returns the grouped report. Hashing checks ctx between
// files, so a long run over a large library can be cancelled cleanly.
func (s *Scanner) Scan(ctx context.Context) (*Report, error) {
	report := &Report{
		GeneratedAt: time.Now().UTC(),
		Extensions:  append([]string(nil), s.cfg.ImageExtensions...),
		Groups:      []Group{},
		Uncertain:   []Group{},
	}

	for _, catalogCfg := range s.cfg.Catalogs {
		if !isStandardCatalog(catalogCfg.Name) || len(catalogCfg.ImageDirs) == 0 {
			continue
		}
		files := collectFiles(catalogCfg.ImageDirs, s.cfg.ImageExtensions)
		digests, err := s.hashFiles(ctx, files)
		if err != nil {
			return nil, err
		}
		confirmed, uncertain := groupByDigest(catalogCfg.Name, digests)
		report.Groups = append(report.Groups, confirmed...)
		report.Uncertain = append(report.Uncertain, uncertain...)

		s.logger.Info("catalog scanned",
			logging.String("catalog", catalogCfg.Name),
			logging.Int("files", len(files)),
			logging.Int("groups", len(confirmed)),
		)
	}

	sortGroups(report.Groups)
	sortGroups(report.Uncertain)
	return report, nil
}

func isStandardCatalog(name string) bool {
	for _, standard := range config.StandardCatalogNames {
		if strings.EqualFold(name, standard) {
			return true
		}
	}
	return false
}

// collectFiles walks the directories and returns every path whose extension
// is on the allow-list. Missing or unreadable directories yield nothing.
func collectFiles(dirs, extensions []string) []string {
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	var files []string
	for _, dir := range dirs {
		_ = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
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
	}
	return files
}

// hashFiles digests the files through a bounded worker pool. Unreadable
// files are dropped from the result rather than failing the scan.
func (s *Scanner) hashFiles(ctx context.Context, files []string) (map[string]string, error) {
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(files) {
		workers = len(files)
	}
	if workers == 0 {
		return map[string]string{}, ctx.Err()
	}

	jobs := make(chan string)
	var (
		mu      sync.Mutex
		digests = make(map[string]string, len(files))
		wg      sync.WaitGroup
	)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for path := range jobs {
				digest, err := hashFile(path)
				if err != nil {
					s.logger.Debug("hash failed",
						logging.String("path", path),
						logging.Error(err),
					)
					continue
				}
				mu.Lock()
				digests[path] = digest
				mu.Unlock()
			}
		}()
	}

	var cancelled error
feed:
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		case jobs <- path:
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled != nil {
		return nil, cancelled
	}
	return digests, nil
}

func hashFile(path string) (string, error) {
	handle, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer handle.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, handle); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// groupByDigest collapses identical content into groups and applies the
// common-id gate. Groups where every file carries ids but the sets are
// disjoint are discarded outright; groups where one or more files carry no
// ids cannot be confirmed or refuted and land in the uncertain bucket.
func groupByDigest(catalogName string, digests map[string]string) (confirmed, uncertain []Group) {
	byDigest := make(map[string][]string)
	for path, digest := range digests {
		byDigest[digest] = append(byDigest[digest], path)
	}

	for digest, paths := range byDigest {
		if len(paths) <= 1 {
			continue
		}
		sort.Strings(paths)

		group := Group{
			Catalog:   catalogName,
			Hash:      digest,
			Files:     make([]FileEntry, 0, len(paths)),
			CommonIDs: []string{},
		}
		allCarryIDs := true
		var common map[string]struct{}
		for _, path := range paths {
			stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			ids := sortedIDs(objectid.Extract(stem))
			group.Files = append(group.Files, FileEntry{Path: path, IDs: ids})
			if len(ids) == 0 {
				allCarryIDs = false
				continue
			}
			common = intersect(common, ids)
		}

		switch {
		case !allCarryIDs:
			uncertain = append(uncertain, group)
		case len(common) > 0:
			group.CommonIDs = sortedKeys(common)
			confirmed = append(confirmed, group)
		}
	}
	return confirmed, uncertain
}

func sortedIDs(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)
	if out == nil {
		out = []string{}
	}
	return out
}

// intersect narrows the running set to ids present in this file too. A nil
// set means this is the first file seen.
func intersect(current map[string]struct{}, ids []string) map[string]struct{} {
	next := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if current == nil {
			next[id] = struct{}{}
			continue
		}
		if _, ok := current[id]; ok {
			next[id] = struct{}{}
		}
	}
	return next
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// sortGroups orders groups by catalog, then largest group first, then hash,
// so reports are stable run to run.
func sortGroups(groups []Group) {
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Catalog != groups[j].Catalog {
			return groups[i].Catalog < groups[j].Catalog
		}
		if len(groups[i].Files) != len(groups[j].Files) {
			return len(groups[i].Files) > len(groups[j].Files)
		}
		return groups[i].Hash < groups[j].Hash
	})
}
