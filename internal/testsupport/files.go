package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile fills the target path with the given contents, creating parent
// directories as needed.
func WriteFile(t testing.TB, path, contents string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteImage drops a small placeholder image file into dir under the given
// name and returns its path.
func WriteImage(t testing.TB, dir, name string) string {
	t.Helper()
	return WriteFile(t, filepath.Join(dir, name), "image "+name)
}

// WriteMetadata stores a raw metadata JSON document at the catalog's
// configured path.
func WriteMetadata(t testing.TB, path, document string) {
	t.Helper()
	WriteFile(t, path, document)
}
