package catalog

import (
	"sort"
	"strings"
)

// Record is one catalog object joined with its indexed images.
type Record struct {
	ObjectID      string
	Catalog       string
	Name          string
	ObjectType    string
	DistanceLY    *float64
	Discoverer    string
	DiscoveryYear *int
	BestMonths    string
	Description   string
	Notes         string
	ImageNotes    map[string]string
	ExternalLink  string
	RAHours       *float64
	DecDeg        *float64
	ImagePaths    []string
	ThumbnailPath string
}

// DisplayName renders "M31 - Andromeda Galaxy", or just the id for unnamed
// objects.
func (r Record) DisplayName() string {
	if r.Name != "" {
		return r.ObjectID + " - " + r.Name
	}
	return r.ObjectID
}

// UniqueKey identifies a record within one load.
func (r Record) UniqueKey() string {
	return r.Catalog + ":" + r.ObjectID
}

// CollectObjectTypes returns the sorted unique non-empty object types across
// records, for consumers that build type filters.
func CollectObjectTypes(records []Record) []string {
	seen := make(map[string]struct{})
	for _, record := range records {
		if record.ObjectType == "" {
			continue
		}
		seen[record.ObjectType] = struct{}{}
	}
	types := make([]string, 0, len(seen))
	for objectType := range seen {
		types = append(types, objectType)
	}
	sort.Strings(types)
	return types
}

// normalizeText repairs the known mojibake in legacy metadata exports, where
// "Méchain" arrived with its é mangled into U+008E.
func normalizeText(value string) string {
	return strings.ReplaceAll(value, "M\u008echain", "Méchain")
}
