package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"starshelf/internal/faults"
)

// Object is the typed view of one catalog entry in a metadata file.
type Object struct {
	Name          string         `json:"name,omitempty"`
	Type          string         `json:"type,omitempty"`
	DistanceLY    *float64       `json:"distance_ly,omitempty"`
	Discoverer    string         `json:"discoverer,omitempty"`
	DiscoveryYear *int           `json:"discovery_year,omitempty"`
	BestMonths    string         `json:"best_months,omitempty"`
	Description   string         `json:"description,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	ImageNotes    map[string]any `json:"image_notes,omitempty"`
	Thumbnail     string         `json:"thumbnail,omitempty"`
	ExternalLink  string         `json:"external_link,omitempty"`
	WikiThumbnail string         `json:"wiki_thumbnail,omitempty"`

	// RA/Dec appear under two historical key spellings and as either
	// numbers or sexagesimal strings; parsing happens in coords.go.
	RAHours any `json:"ra_hours,omitempty"`
	RA      any `json:"ra,omitempty"`
	DecDeg  any `json:"dec_deg,omitempty"`
	Dec     any `json:"dec,omitempty"`
}

// RAValue returns the entry's right ascension in hours. The ra_hours key wins
// over the legacy ra key. ok is false when neither parses.
func (o Object) RAValue() (float64, bool) {
	if v, ok := ParseRA(o.RAHours); ok {
		return v, true
	}
	return ParseRA(o.RA)
}

// DecValue returns the entry's declination in degrees, dec_deg winning over
// the legacy dec key.
func (o Object) DecValue() (float64, bool) {
	if v, ok := ParseDec(o.DecDeg); ok {
		return v, true
	}
	return ParseDec(o.Dec)
}

// StringImageNotes filters image_notes down to string-keyed string values,
// dropping anything else a hand-edited file may contain.
func (o Object) StringImageNotes() map[string]string {
	if len(o.ImageNotes) == 0 {
		return map[string]string{}
	}
	notes := make(map[string]string, len(o.ImageNotes))
	for name, value := range o.ImageNotes {
		text, ok := value.(string)
		if !ok {
			continue
		}
		notes[name] = text
	}
	return notes
}

// File is a parsed metadata file: top-level catalog sections kept raw so the
// typed view never has to understand sections it does not use.
type File struct {
	path     string
	sections map[string]json.RawMessage
}

// Load reads and parses a metadata file. A missing file is a configuration
// error so callers can decide whether to skip the catalog (library load) or
// abort (CLI).
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, faults.Wrap(faults.ErrConfig, "metadata", "read", path, err)
	}
	return Parse(path, data)
}

// Parse decodes metadata bytes, falling back to Latin-1 when the file is not
// valid UTF-8.
func Parse(path string, data []byte) (*File, error) {
	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, faults.Wrap(faults.ErrEncoding, "metadata", "decode", path, err)
		}
		data = decoded
	}
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, faults.Wrap(faults.ErrConfig, "metadata", "parse", path, err)
	}
	return &File{path: path, sections: sections}, nil
}

// Entries returns the typed objects of the named catalog section. Lookup is
// exact first, then case-insensitive; a file holding a single section serves
// it regardless of its key. Missing sections yield an empty map.
func (f *File) Entries(catalogName string) map[string]Object {
	raw, ok := f.section(catalogName)
	if !ok {
		return map[string]Object{}
	}
	var entries map[string]Object
	if err := json.Unmarshal(raw, &entries); err != nil {
		return map[string]Object{}
	}
	if entries == nil {
		return map[string]Object{}
	}
	return entries
}

func (f *File) section(catalogName string) (json.RawMessage, bool) {
	if raw, ok := f.sections[catalogName]; ok && isObject(raw) {
		return raw, true
	}
	lower := strings.ToLower(catalogName)
	for key, raw := range f.sections {
		if strings.ToLower(key) == lower && isObject(raw) {
			return raw, true
		}
	}
	if len(f.sections) == 1 {
		for _, raw := range f.sections {
			if isObject(raw) {
				return raw, true
			}
		}
	}
	return nil, false
}

func isObject(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "{")
}

// Path returns the file location this metadata was loaded from.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

func (f *File) String() string {
	return fmt.Sprintf("metadata %s (%d sections)", f.path, len(f.sections))
}
