package catalog

import (
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"starshelf/internal/config"
	"starshelf/internal/imageindex"
	"starshelf/internal/logging"
	"starshelf/internal/metadata"
	"starshelf/internal/objectid"
	"starshelf/internal/visibility"
)

// Loader builds catalog records from configuration, metadata files, and image
// directories.
type Loader struct {
	cfg    *config.Config
	logger *slog.Logger

	// HemispherePolicy governs metadata-supplied month strings for southern
	// observers. Defaults to the seasonal six-month shift.
	HemispherePolicy visibility.HemispherePolicy
}

// NewLoader constructs a loader with the default hemisphere policy.
func NewLoader(cfg *config.Config, logger *slog.Logger) *Loader {
	return &Loader{
		cfg:              cfg,
		logger:           logging.WithComponent(logger, "catalog"),
		HemispherePolicy: visibility.ShiftSouthern,
	}
}

// Load produces records for every configured catalog in declared order. A
// catalog whose metadata file is missing or unreadable is skipped whole,
// including image-only synthesis; one bad catalog never aborts the load.
func (l *Loader) Load() []Record {
	var records []Record
	for _, catalogCfg := range l.cfg.Catalogs {
		records = append(records, l.loadCatalog(catalogCfg)...)
	}
	return records
}

func (l *Loader) loadCatalog(catalogCfg config.Catalog) []Record {
	name := catalogCfg.Name
	index := l.buildIndex(catalogCfg)

	file, err := metadata.Load(catalogCfg.MetadataFile)
	if err != nil {
		l.logger.Warn("skipping catalog",
			logging.String("catalog", name),
			logging.Error(err),
		)
		return nil
	}

	entries := file.Entries(name)
	orderedIDs := sortedObjectIDs(entries)
	if strings.EqualFold(name, config.CatalogSolarSystem) {
		orderedIDs = solarOrderedIDs(entries)
	}
	records := make([]Record, 0, len(entries))
	for _, objectID := range orderedIDs {
		records = append(records, l.buildRecord(name, objectID, entries[objectID], index))
	}
	records = append(records, l.imageOnlyRecords(name, entries, index)...)

	l.logger.Info("catalog loaded",
		logging.String("catalog", name),
		logging.Int("records", len(records)),
	)
	return records
}

// buildIndex assembles the image index for one catalog: its own directories,
// the master fallback directory, and for Messier/NGC the sibling catalog's
// directories so an image filed under either number is discoverable from
// both.
func (l *Loader) buildIndex(catalogCfg config.Catalog) imageindex.Index {
	dirs := append([]string(nil), catalogCfg.ImageDirs...)
	if l.cfg.MasterImageDir != "" {
		dirs = append(dirs, l.cfg.MasterImageDir)
	}
	if sibling, ok := siblingCatalog(catalogCfg.Name); ok {
		if siblingCfg, found := l.cfg.CatalogByName(sibling); found {
			dirs = append(dirs, siblingCfg.ImageDirs...)
		}
	}

	solar := strings.EqualFold(catalogCfg.Name, config.CatalogSolarSystem)
	return imageindex.Build(imageindex.Options{
		Dirs:          dirs,
		Extensions:    l.cfg.ImageExtensions,
		ExpandAliases: !solar && expandsAliases(catalogCfg.Name),
		SolarNames:    solar,
		Logger:        l.logger,
	})
}

func (l *Loader) buildRecord(catalogName, objectID string, meta metadata.Object, index imageindex.Index) Record {
	imagePaths := index.Lookup(objectID)

	var raHours, decDeg *float64
	if v, ok := meta.RAValue(); ok {
		raHours = &v
	}
	if v, ok := meta.DecValue(); ok {
		decDeg = &v
	}

	observer := l.cfg.Observer
	bestMonths := visibility.AdjustMonths(meta.BestMonths, observer.Latitude, l.HemispherePolicy)
	if bestMonths == "" && raHours != nil && decDeg != nil {
		bestMonths = visibility.BestMonths(*raHours, *decDeg, observer.Latitude, observer.Longitude)
	}

	imageNotes := meta.StringImageNotes()
	for imageName, note := range imageNotes {
		imageNotes[imageName] = normalizeText(note)
	}

	externalLink := normalizeText(meta.ExternalLink)
	if externalLink == "" {
		externalLink = defaultExternalLink(objectID, meta.Name)
	}

	return Record{
		ObjectID:      objectID,
		Catalog:       catalogName,
		Name:          normalizeText(meta.Name),
		ObjectType:    normalizeText(meta.Type),
		DistanceLY:    meta.DistanceLY,
		Discoverer:    normalizeText(meta.Discoverer),
		DiscoveryYear: meta.DiscoveryYear,
		BestMonths:    bestMonths,
		Description:   normalizeText(meta.Description),
		Notes:         normalizeText(meta.Notes),
		ImageNotes:    imageNotes,
		ExternalLink:  externalLink,
		RAHours:       raHours,
		DecDeg:        decDeg,
		ImagePaths:    imagePaths,
		ThumbnailPath: selectThumbnail(imagePaths, meta.Thumbnail),
	}
}

// imageOnlyRecords synthesizes minimal records for indexed ids that match the
// catalog's id pattern but have no metadata entry.
func (l *Loader) imageOnlyRecords(catalogName string, entries map[string]metadata.Object, index imageindex.Index) []Record {
	pattern := objectid.CatalogPattern(catalogName)
	if pattern == nil && !strings.EqualFold(catalogName, config.CatalogSolarSystem) {
		// Custom catalogs have no id scheme to synthesize from.
		return nil
	}

	known := make(map[string]struct{}, len(entries))
	for objectID := range entries {
		known[strings.ToUpper(objectID)] = struct{}{}
	}

	var records []Record
	for _, objectID := range index.IDs() {
		if pattern != nil && !pattern.MatchString(objectID) {
			continue
		}
		if _, ok := known[objectID]; ok {
			continue
		}
		imagePaths := index.Lookup(objectID)
		thumbnail := ""
		if len(imagePaths) > 0 {
			thumbnail = imagePaths[0]
		}
		records = append(records, Record{
			ObjectID:      objectID,
			Catalog:       catalogName,
			ImageNotes:    map[string]string{},
			ExternalLink:  defaultExternalLink(objectID, ""),
			ImagePaths:    imagePaths,
			ThumbnailPath: thumbnail,
		})
	}
	return records
}

// siblingCatalog pairs Messier with NGC for cross-catalog indexing.
func siblingCatalog(catalogName string) (string, bool) {
	switch {
	case strings.EqualFold(catalogName, config.CatalogMessier):
		return config.CatalogNGC, true
	case strings.EqualFold(catalogName, config.CatalogNGC):
		return config.CatalogMessier, true
	default:
		return "", false
	}
}

// expandsAliases reports whether a catalog's index should include
// cross-catalog equivalents.
func expandsAliases(catalogName string) bool {
	return strings.EqualFold(catalogName, config.CatalogMessier) ||
		strings.EqualFold(catalogName, config.CatalogNGC)
}

var idSplitPattern = regexp.MustCompile(`^([A-Za-z]+)0*(\d+)$`)

// sortedObjectIDs orders metadata keys by (prefix, number) so M2 precedes
// M10; non-conforming ids sort lexicographically after them.
func sortedObjectIDs(entries map[string]metadata.Object) []string {
	ids := make([]string, 0, len(entries))
	for objectID := range entries {
		ids = append(ids, objectID)
	}
	sort.Slice(ids, func(i, j int) bool {
		pi, ni, oki := splitID(ids[i])
		pj, nj, okj := splitID(ids[j])
		switch {
		case oki && okj:
			if pi != pj {
				return pi < pj
			}
			return ni < nj
		case oki:
			return true
		case okj:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
	return ids
}

// solarOrderedIDs orders solar-system ids in ephemeris declaration order
// (Sun outward); ids outside the known set sort alphabetically after them.
func solarOrderedIDs(entries map[string]metadata.Object) []string {
	rank := make(map[string]int)
	for i, id := range objectid.SolarIDs() {
		rank[id] = i
	}

	ids := make([]string, 0, len(entries))
	for objectID := range entries {
		ids = append(ids, objectID)
	}
	sort.Slice(ids, func(i, j int) bool {
		ri, oki := rank[strings.ToUpper(ids[i])]
		rj, okj := rank[strings.ToUpper(ids[j])]
		switch {
		case oki && okj:
			return ri < rj
		case oki:
			return true
		case okj:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
	return ids
}

func splitID(id string) (string, int, bool) {
	m := idSplitPattern.FindStringSubmatch(id)
	if m == nil {
		return "", 0, false
	}
	number, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return strings.ToUpper(m[1]), number, true
}
