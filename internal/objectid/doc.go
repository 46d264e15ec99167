// Package objectid extracts canonical deep-sky object identifiers from image
// filename stems.
//
// A single compiled pattern finds candidate catalog tokens (Messier, NGC, IC,
// Caldwell); the boundary rules that keep false positives out ("AM31" is not
// M31, "M31A" is no object, "M3145" is never split into M31+45) are explicit
// rune checks around each candidate rather than regex lookarounds, so they
// stay auditable and independently testable. Solar-system targets use a
// separate curated name-variant matcher.
package objectid
