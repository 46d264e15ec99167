package metadata

import (
	"regexp"
	"strconv"
	"strings"
)

var coordSeparators = regexp.MustCompile(`[:\s]+`)

// ParseRA converts a right-ascension value to decimal hours. Accepted inputs
// are numbers (already hours) and "H:M:S" / "H M S" text. Malformed values
// report ok=false; they never error.
func ParseRA(value any) (float64, bool) {
	return parseSexagesimal(value, false)
}

// ParseDec converts a declination value to decimal degrees. Accepted inputs
// are numbers and signed "±D:M:S" / "D M S" text.
func ParseDec(value any) (float64, bool) {
	return parseSexagesimal(value, true)
}

func parseSexagesimal(value any, signed bool) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		return parseSexagesimalText(v, signed)
	default:
		return 0, false
	}
}

func parseSexagesimalText(text string, signed bool) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	sign := 1.0
	if signed {
		if strings.HasPrefix(text, "-") {
			sign = -1.0
		}
		text = strings.TrimLeft(text, "+-")
	}
	parts := coordSeparators.Split(text, -1)
	if len(parts) == 0 || parts[0] == "" {
		return 0, false
	}
	units := [3]float64{}
	for i := 0; i < len(parts) && i < 3; i++ {
		v, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return 0, false
		}
		units[i] = v
	}
	return sign * (units[0] + units[1]/60.0 + units[2]/3600.0), true
}
