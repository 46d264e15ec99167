// Package aliases maps objects that carry more than one valid catalog number.
//
// The Messier catalog overlaps the NGC and IC catalogs almost completely; an
// image named for either number is the same capture. The table here is
// process-wide immutable data exposed only through pure lookup functions.
package aliases
