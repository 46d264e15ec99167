package catalog

import (
	"path/filepath"
	"strings"
)

// selectThumbnail picks the record thumbnail: the metadata value matched
// against filenames exactly, then against stems, then the first path in
// sorted order.
func selectThumbnail(imagePaths []string, thumbnailValue string) string {
	if len(imagePaths) == 0 {
		return ""
	}
	normalized := strings.TrimSpace(thumbnailValue)
	if normalized == "" {
		return imagePaths[0]
	}
	for _, path := range imagePaths {
		if filepath.Base(path) == normalized {
			return path
		}
	}
	for _, path := range imagePaths {
		base := filepath.Base(path)
		if strings.TrimSuffix(base, filepath.Ext(base)) == normalized {
			return path
		}
	}
	return imagePaths[0]
}
