package visibility

import (
	"math"
	"strings"
	"time"
)

// referenceYear anchors the monthly sampling instants. The sidereal drift
// between years is far below the 25-degree threshold's granularity, so the
// year stays fixed for reproducible output.
const referenceYear = 2025

// minAltitudeDeg is the usable imaging altitude threshold.
const minAltitudeDeg = 25.0

var monthCodes = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// BestMonths returns the concatenated 3-letter codes of every month in which
// the object at (raHours, decDeg) reaches 25 degrees altitude at midnight UTC
// on the 15th, observed from (latDeg, lonDeg).
func BestMonths(raHours, decDeg, latDeg, lonDeg float64) string {
	var builder strings.Builder
	for month := 1; month <= 12; month++ {
		date := time.Date(referenceYear, time.Month(month), 15, 0, 0, 0, 0, time.UTC)
		lst := localSiderealTime(date, lonDeg)
		ha := hourAngleDeg(lst, raHours)
		if altitudeDeg(latDeg, decDeg, ha) >= minAltitudeDeg {
			builder.WriteString(monthCodes[month-1])
		}
	}
	return builder.String()
}

// HemispherePolicy controls how metadata-supplied month strings are adapted
// to the observer's hemisphere.
type HemispherePolicy int

const (
	// KeepNorthern leaves the month string untouched.
	KeepNorthern HemispherePolicy = iota
	// ShiftSouthern pairs each month with its seasonal opposite (Jan<->Jul)
	// when the observer is south of the equator. An approximation: the exact
	// answer would recompute from coordinates, but curated month strings
	// rarely ship with coordinates good enough to beat it.
	ShiftSouthern
)

// AdjustMonths applies the hemisphere policy to a pre-supplied best-months
// string. Unrecognized 3-letter chunks are dropped; if nothing parses the
// input is returned unchanged.
func AdjustMonths(bestMonths string, latDeg float64, policy HemispherePolicy) string {
	if bestMonths == "" {
		return bestMonths
	}
	if policy != ShiftSouthern || latDeg >= 0 {
		return bestMonths
	}
	var months []int
	for i := 0; i+3 <= len(bestMonths); i += 3 {
		chunk := bestMonths[i : i+3]
		if idx := monthIndex(chunk); idx >= 0 {
			months = append(months, idx)
		}
	}
	if len(months) == 0 {
		return bestMonths
	}
	var builder strings.Builder
	for _, idx := range months {
		builder.WriteString(monthCodes[(idx+6)%12])
	}
	return builder.String()
}

func monthIndex(code string) int {
	for i, name := range monthCodes {
		if name == code {
			return i
		}
	}
	return -1
}

// localSiderealTime returns LST in hours for the given instant and longitude.
func localSiderealTime(date time.Time, longitudeDeg float64) float64 {
	jd := julianDate(date)
	t := (jd - 2451545.0) / 36525.0
	gmst := 280.46061837 + 360.98564736629*(jd-2451545.0) + 0.000387933*t*t - t*t*t/38710000.0
	gmst = math.Mod(gmst, 360.0)
	if gmst < 0 {
		gmst += 360.0
	}
	lst := math.Mod(gmst+longitudeDeg, 360.0)
	if lst < 0 {
		lst += 360.0
	}
	return lst / 15.0
}

// julianDate implements the standard Gregorian-calendar conversion.
func julianDate(date time.Time) float64 {
	year := date.Year()
	month := int(date.Month())
	day := float64(date.Day()) + (float64(date.Hour())+float64(date.Minute())/60.0)/24.0
	if month <= 2 {
		year--
		month += 12
	}
	a := math.Floor(float64(year) / 100.0)
	b := 2 - a + math.Floor(a/4.0)
	return math.Floor(365.25*float64(year+4716)) + math.Floor(30.6001*float64(month+1)) + day + b - 1524.5
}

// hourAngleDeg converts LST and RA to an hour angle normalized to
// [-180, 180] degrees.
func hourAngleDeg(lstHours, raHours float64) float64 {
	ha := (lstHours - raHours) * 15.0
	ha = math.Mod(ha+180.0, 360.0)
	if ha < 0 {
		ha += 360.0
	}
	return ha - 180.0
}

// altitudeDeg solves sin(alt) = sin(lat)sin(dec) + cos(lat)cos(dec)cos(HA).
func altitudeDeg(latDeg, decDeg, haDeg float64) float64 {
	lat := latDeg * math.Pi / 180.0
	dec := decDeg * math.Pi / 180.0
	ha := haDeg * math.Pi / 180.0
	sinAlt := math.Sin(lat)*math.Sin(dec) + math.Cos(lat)*math.Cos(dec)*math.Cos(ha)
	if sinAlt > 1 {
		sinAlt = 1
	} else if sinAlt < -1 {
		sinAlt = -1
	}
	return math.Asin(sinAlt) * 180.0 / math.Pi
}
