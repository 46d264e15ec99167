package objectid

import (
	"regexp"
	"strings"
)

// solarObject pairs a canonical solar-system id with its accepted filename
// variants. Variants are stored lowercase with spacing, hyphens and
// apostrophes already removed; curated extras cover designations that appear
// in real capture names ("1P", "109P").
type solarObject struct {
	ID       string
	Variants []string
}

var solarObjects = []solarObject{
	{"SUN", []string{"sun", "sol"}},
	{"MOON", []string{"moon", "luna", "lunar"}},
	{"MERCURY", []string{"mercury"}},
	{"VENUS", []string{"venus"}},
	{"MARS", []string{"mars"}},
	{"JUPITER", []string{"jupiter"}},
	{"SATURN", []string{"saturn"}},
	{"URANUS", []string{"uranus"}},
	{"NEPTUNE", []string{"neptune"}},
	{"PLUTO", []string{"pluto"}},
	{"CERES", []string{"ceres", "1ceres"}},
	{"PALLAS", []string{"pallas", "2pallas"}},
	{"JUNO", []string{"juno", "3juno"}},
	{"VESTA", []string{"vesta", "4vesta"}},
	{"CHARIKLO", []string{"chariklo", "10199chariklo"}},
	{"HALLEY", []string{"halley", "halleyscomet", "comethalley", "1p"}},
	{"SWIFT-TUTTLE", []string{"swifttuttle", "cometswifttuttle", "109p"}},
}

// shortVariantPatterns holds compiled word-boundary matchers for variants of
// length <= 2, which would otherwise fire on fragments of unrelated names.
var shortVariantPatterns = buildShortVariantPatterns()

func buildShortVariantPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, object := range solarObjects {
		for _, variant := range object.Variants {
			if len(variant) > 2 {
				continue
			}
			if _, ok := patterns[variant]; ok {
				continue
			}
			patterns[variant] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(variant) + `\b`)
		}
	}
	return patterns
}

var solarSeparators = strings.NewReplacer(" ", "", "-", "", "_", "", "'", "")

// ExtractSolar returns the canonical solar-system ids matched by a filename
// stem, in first-seen declaration order.
func ExtractSolar(stem string) []string {
	normalized := strings.ToLower(solarSeparators.Replace(stem))
	var ids []string
	for _, object := range solarObjects {
		matched := false
		for _, variant := range object.Variants {
			if len(variant) <= 2 {
				if shortVariantPatterns[variant].MatchString(stem) {
					matched = true
					break
				}
				continue
			}
			if strings.Contains(normalized, variant) {
				matched = true
				break
			}
		}
		if matched {
			ids = append(ids, object.ID)
		}
	}
	return ids
}

// SolarIDs lists every canonical solar-system id known to the matcher.
func SolarIDs() []string {
	ids := make([]string, len(solarObjects))
	for i, object := range solarObjects {
		ids[i] = object.ID
	}
	return ids
}
