// Package config loads and validates the starshelf configuration file.
//
// Configuration is TOML: a list of catalogs (name, metadata JSON file, image
// directories), the image extension allow-list, the master intake directory,
// observer coordinates for visibility computation, and logging options. The
// four standard catalogs always exist after loading; user entries override the
// defaults by name and unrecognized catalogs are appended as-is.
package config
