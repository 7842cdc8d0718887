// Package testutil provides shared test helpers for setting up project directories.
package testutil

import (
	"testing"

	"github.com/starford/ansuz/internal/storage"
)

// TestProject creates a temporary project directory with a storage.Provider.
func TestProject(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}
