// Package visibility predicts the calendar months a fixed-coordinate target
// clears a usable imaging altitude from a given observing site.
//
// The computation samples midnight UTC on the 15th of each month of a fixed
// reference year: Julian Date, Greenwich Mean Sidereal Time via the standard
// cubic polynomial in Julian centuries since J2000, Local Sidereal Time from
// the observer's longitude, then the hour-angle altitude formula. A month
// qualifies when the altitude reaches 25 degrees.
package visibility
