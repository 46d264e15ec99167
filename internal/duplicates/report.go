package duplicates

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"starshelf/internal/faults"
)

// FileEntry is one member of a duplicate group.
type FileEntry struct {
	Path string   `json:"path"`
	IDs  []string `json:"ids"`
}

// Group collects byte-identical files within one catalog.
type Group struct {
	Catalog   string      `json:"catalog"`
	Hash      string      `json:"hash"`
	Files     []FileEntry `json:"files"`
	CommonIDs []string    `json:"common_ids"`
}

// Report is the result of one duplicate scan.
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	Extensions  []string  `json:"extensions"`
	Groups      []Group   `json:"groups"`
	// Uncertain holds identical-content groups that could not be confirmed
	// because at least one filename carries no catalog id.
	Uncertain []Group `json:"uncertain_groups,omitempty"`
}

// Text renders the human-readable report.
func (r *Report) Text() string {
	var b strings.Builder

	totalFiles := 0
	for _, group := range r.Groups {
		totalFiles += len(group.Files)
	}
	fmt.Fprintf(&b, "Duplicate groups: %d\n", len(r.Groups))
	fmt.Fprintf(&b, "Duplicate files: %d\n", totalFiles)
	b.WriteString("\n")
	for _, group := range r.Groups {
		writeGroup(&b, group)
	}

	if len(r.Uncertain) > 0 {
		fmt.Fprintf(&b, "Unconfirmed groups (no shared catalog ids): %d\n", len(r.Uncertain))
		b.WriteString("\n")
		for _, group := range r.Uncertain {
			writeGroup(&b, group)
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeGroup(b *strings.Builder, group Group) {
	fmt.Fprintf(b, "Catalog: %s\n", group.Catalog)
	fmt.Fprintf(b, "SHA-256: %s\n", group.Hash)
	if len(group.CommonIDs) > 0 {
		fmt.Fprintf(b, "Common IDs: %s\n", strings.Join(group.CommonIDs, ", "))
	} else {
		b.WriteString("Common IDs: none\n")
	}
	for _, file := range group.Files {
		if len(file.IDs) > 0 {
			fmt.Fprintf(b, "  - %s (%s)\n", file.Path, strings.Join(file.IDs, ", "))
		} else {
			fmt.Fprintf(b, "  - %s\n", file.Path)
		}
	}
	b.WriteString("\n")
}

// JSONPath derives the structured report path from the text report path by
// swapping the extension for .json.
func JSONPath(textPath string) string {
	return strings.TrimSuffix(textPath, filepath.Ext(textPath)) + ".json"
}

// Write stores the text report at path and the JSON report alongside it,
// creating parent directories as needed.
func (r *Report) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return faults.Wrap(faults.ErrFilesystem, "duplicates", "write report", "create output directory", err)
	}
	if err := os.WriteFile(path, []byte(r.Text()), 0o644); err != nil {
		return faults.Wrap(faults.ErrFilesystem, "duplicates", "write report", "write text report", err)
	}

	payload, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return faults.Wrap(faults.ErrData, "duplicates", "write report", "encode json report", err)
	}
	payload = append(payload, '\n')
	if err := os.WriteFile(JSONPath(path), payload, 0o644); err != nil {
		return faults.Wrap(faults.ErrFilesystem, "duplicates", "write report", "write json report", err)
	}
	return nil
}
