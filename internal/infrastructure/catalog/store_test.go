package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/driftline/storefront/internal/domain"
)

func writeSnapshot(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing snapshot %s: %v", name, err)
	}
}

func TestStore_LoadDir(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "riser-tee.json", `{"handle":"riser-tee","title":"Riser Tee","variants":[{"id":"v1","price":1200,"available":true}]}`)
	writeSnapshot(t, dir, "cove-jacket.json", `{"handle":"cove-jacket","title":"Cove Jacket"}`)
	writeSnapshot(t, dir, "notes.txt", `not a snapshot`)

	store := NewStore()
	if err := store.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}

	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (non-json files skipped)", store.Len())
	}

	product, err := store.Product("riser-tee")
	if err != nil {
		t.Fatalf("Product() error = %v", err)
	}
	if product.Title != "Riser Tee" || len(product.Variants) != 1 {
		t.Errorf("loaded product = %+v", product)
	}
}

func TestStore_LoadDir_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "broken.json", `{"handle": `)

	store := NewStore()
	if err := store.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}

	// Malformed snapshot still loads, addressable by file name.
	product, err := store.Product("broken")
	if err != nil {
		t.Fatalf("Product() error = %v", err)
	}
	if len(product.Variants) != 0 {
		t.Errorf("malformed snapshot produced variants: %+v", product.Variants)
	}
}

func TestStore_LoadDir_MissingDirectory(t *testing.T) {
	store := NewStore()
	err := store.LoadDir(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("LoadDir() on missing directory returned nil error")
	}
}

func TestStore_Product_NotFound(t *testing.T) {
	store := NewStore()

	_, err := store.Product("missing")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("Product() error = %v, want ErrProductNotFound", err)
	}
}

func TestStore_Handles_Sorted(t *testing.T) {
	store := NewStore()
	store.Add(&domain.Product{Handle: "zip-hoodie"})
	store.Add(&domain.Product{Handle: "anchor-cap"})
	store.Add(&domain.Product{Handle: "mesa-shorts"})

	handles := store.Handles()
	want := []string{"anchor-cap", "mesa-shorts", "zip-hoodie"}
	if len(handles) != len(want) {
		t.Fatalf("Handles() = %v, want %v", handles, want)
	}
	for i := range want {
		if handles[i] != want[i] {
			t.Errorf("Handles()[%d] = %q, want %q", i, handles[i], want[i])
		}
	}
}
