// Package metadata reads and writes the per-catalog JSON metadata files.
//
// Reading tolerates legacy files: bytes that are not valid UTF-8 fall back to
// a Latin-1 decode, RA accepts either float hours or "H:M:S" text, Dec either
// float degrees or signed "D:M:S" text, and malformed values degrade to
// "unknown" instead of failing the load. Writing is a whole-file
// read-modify-write guarded by a per-file lock so concurrent note edits
// cannot race each other.
package metadata
