// Package imageindex builds the object-id to image-path index for a set of
// image directories.
//
// Directories are walked recursively; every file whose extension is on the
// allow-list has its stem run through the object-id extractor (optionally
// expanded with cross-catalog aliases or matched against solar-system name
// variants). A per-id set of resolved paths guards against the same physical
// file reached through two directory aliases, and each id's path list is
// sorted case-insensitively by filename so output never depends on walk
// order. Missing directories are skipped silently.
package imageindex
