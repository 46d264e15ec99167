// Package catalog joins per-catalog JSON metadata with the image index into
// the records consumed by viewers and batch tools.
//
// Records are rebuilt wholesale on every load; (catalog, object id) is unique
// within one load and nothing persists across reloads except what the
// metadata files themselves carry.
package catalog
