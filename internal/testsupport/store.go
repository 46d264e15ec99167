package testsupport

import (
	"testing"

	"starshelf/internal/config"
	"starshelf/internal/scanstore"
)

// MustOpenStore opens a scanstore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *scanstore.Store {
	t.Helper()

	store, err := scanstore.Open(cfg)
	if err != nil {
		t.Fatalf("scanstore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
