package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFakeImage(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("img"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestListImages(t *testing.T) {
	root := t.TempDir()
	store := New(root, "http://localhost:4000", 400, nil)

	for slug, names := range map[string][]string{
		"ana":   {"photos-1-a.png", "photos-2-b.png"},
		"bruno": {"photos-3-c.jpg"},
	} {
		if err := store.Layout.EnsureUserDirs(slug); err != nil {
			t.Fatalf("ensure dirs: %v", err)
		}
		for _, n := range names {
			writeFakeImage(t, store.Layout.OriginalPath(slug, n))
			writeFakeImage(t, store.Layout.ThumbnailPath(slug, n))
		}
	}

	images, err := store.ListImages()
	if err != nil {
		t.Fatalf("ListImages: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("got %d entries, want 3: %+v", len(images), images)
	}

	// os.ReadDir sorts names, so order is deterministic.
	wantUsers := []string{"ana", "ana", "bruno"}
	for i, img := range images {
		if img.User != wantUsers[i] {
			t.Errorf("entry %d user = %q, want %q", i, img.User, wantUsers[i])
		}
	}

	if images[0].OriginalURL != "http://localhost:4000/uploads/ana/photos-1-a.png" {
		t.Errorf("unexpected OriginalURL %q", images[0].OriginalURL)
	}
	if images[0].ThumbnailURL != "http://localhost:4000/uploads/ana/thumbnails/photos-1-a.png" {
		t.Errorf("unexpected ThumbnailURL %q", images[0].ThumbnailURL)
	}
}

func TestListImagesExcludesThumbnailsDir(t *testing.T) {
	root := t.TempDir()
	store := New(root, "http://localhost:4000", 400, nil)

	if err := store.Layout.EnsureUserDirs("ana"); err != nil {
		t.Fatalf("ensure dirs: %v", err)
	}
	writeFakeImage(t, store.Layout.OriginalPath("ana", "photos-1-a.png"))
	writeFakeImage(t, store.Layout.ThumbnailPath("ana", "photos-1-a.png"))

	images, err := store.ListImages()
	if err != nil {
		t.Fatalf("ListImages: %v", err)
	}
	if len(images) != 1 {
		t.Fatalf("got %d entries, want 1 (thumbnails dir must not be listed)", len(images))
	}
}

func TestListImagesMissingRoot(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "never-created"), "http://localhost:4000", 400, nil)

	images, err := store.ListImages()
	if err != nil {
		t.Fatalf("ListImages on missing root: %v", err)
	}
	if len(images) != 0 {
		t.Errorf("got %d entries, want 0", len(images))
	}
}

func TestListImagesIgnoresStrayRootFiles(t *testing.T) {
	root := t.TempDir()
	store := New(root, "http://localhost:4000", 400, nil)

	writeFakeImage(t, filepath.Join(root, "stray.txt"))
	if err := store.Layout.EnsureUserDirs("ana"); err != nil {
		t.Fatalf("ensure dirs: %v", err)
	}
	writeFakeImage(t, store.Layout.OriginalPath("ana", "photos-1-a.png"))

	images, err := store.ListImages()
	if err != nil {
		t.Fatalf("ListImages: %v", err)
	}
	if len(images) != 1 {
		t.Fatalf("got %d entries, want 1", len(images))
	}
}
