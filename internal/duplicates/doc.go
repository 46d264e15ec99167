// Package duplicates finds byte-identical images within each catalog's
// directories. Files are stream-hashed with SHA-256 and grouped by digest; a
// group is confirmed only when every member's filename carries catalog ids
// and those id sets share at least one id. Identical files whose names carry
// no ids at all are reported separately as unconfirmed, since the shared
// bytes may be a reused placeholder rather than a real duplicate capture.
package duplicates
