package objectid

import "regexp"

// Catalog prefix decision table. Priority order matters: when a filename
// carries ids from several catalogs the first matching entry wins, so
// "M42_NGC1976" routes to Messier.
var catalogTable = []struct {
	Catalog string
	Pattern *regexp.Regexp
}{
	{"Messier", regexp.MustCompile(`^M\d+$`)},
	{"NGC", regexp.MustCompile(`^NGC\d+$`)},
	{"IC", regexp.MustCompile(`^IC\d+$`)},
	{"Caldwell", regexp.MustCompile(`^C\d+$`)},
}

// CatalogPattern returns the anchored id pattern for a catalog name, or nil
// for catalogs without a numeric prefix scheme (such as the solar system
// grouping).
func CatalogPattern(catalog string) *regexp.Regexp {
	for _, entry := range catalogTable {
		if entry.Catalog == catalog {
			return entry.Pattern
		}
	}
	return nil
}

// CatalogForID classifies a canonical id into its catalog name.
func CatalogForID(id string) (string, bool) {
	for _, entry := range catalogTable {
		if entry.Pattern.MatchString(id) {
			return entry.Catalog, true
		}
	}
	return "", false
}

// PickCatalog selects the destination catalog for a set of extracted ids
// using the fixed priority Messier > NGC > IC > Caldwell. It returns false
// when no id matches any catalog.
func PickCatalog(ids []string) (string, bool) {
	for _, entry := range catalogTable {
		for _, id := range ids {
			if entry.Pattern.MatchString(id) {
				return entry.Catalog, true
			}
		}
	}
	return "", false
}
